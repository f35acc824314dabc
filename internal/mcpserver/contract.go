package mcpserver

const conventionsURI = "lifetrack://conventions"

// Conventions documents the value formats accepted by the lifetrack tools.
const Conventions = `# lifetrack Data Conventions

## Dates

- Habit log days are calendar dates in ` + "`" + `YYYY-MM-DD` + "`" + ` form. "Today" follows the
  server's configured time zone.
- Transaction dates and goal start/target dates accept an RFC 3339 timestamp
  (` + "`" + `2025-01-20T09:30:00Z` + "`" + `) or a bare day (` + "`" + `2025-01-20` + "`" + `, read as midnight UTC).

## Money and measurements

- Amounts and goal values are decimal strings such as ` + "`" + `"12.50"` + "`" + `. They are never
  rounded through floating point.
- Transaction amounts are non-negative; the ` + "`" + `type` + "`" + ` field (` + "`" + `income` + "`" + ` or
  ` + "`" + `expense` + "`" + `) carries the sign.

## Habits

- One log per habit per day. Logging the same day again replaces the earlier entry.
- ` + "`" + `currentStreak` + "`" + ` counts consecutive completed days ending today. A missing day
  ends the streak.
- ` + "`" + `longestStreak` + "`" + ` is the longest run of completed logs, newest first, reset only
  by a log marked not completed.

## Goals

- ` + "`" + `status` + "`" + ` is one of ` + "`" + `not_started` + "`" + `, ` + "`" + `in_progress` + "`" + `, ` + "`" + `completed` + "`" + `, ` + "`" + `on_hold` + "`" + `.
- ` + "`" + `progress` + "`" + ` is currentValue / targetValue as a whole percentage, capped at 100,
  and 0 when no target is set.
- Motivation media are http(s) URLs or base64 ` + "`" + `data:` + "`" + ` URIs; attach them with the
  ` + "`" + `add_goal_media` + "`" + ` tool. At most 20 per goal.

## Dashboard

The ` + "`" + `lifetrack://dashboard` + "`" + ` resource and the ` + "`" + `dashboard_stats` + "`" + ` tool return:

` + "```" + `json
{
  "totalNotes": 12,
  "habitsCompletedToday": "2/3",
  "monthlyBalance": "749.5",
  "goalsProgress": "1/4"
}
` + "```" + `
`
