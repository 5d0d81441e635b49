package mcpserver

// ScoringGuide describes how achievement scores are assigned. LLM
// consumers should read it before summarizing or comparing scores.
const ScoringGuide = `# Wunjo Achievement Scoring

Every completed item earns a fixed score based on where it came from.

## Sources

| Source | Score |
|--------|-------|
| Finished trip | 50 |
| Past event | 20 |
| Completed wish, high priority | 30 |
| Completed wish, medium priority | 20 |
| Completed wish, low priority | 10 |
| Completed wish, unknown priority | 10 |

## Rules

1. A wish scores at completion time from the priority it carries then.
   Changing the priority later never re-scores it.
2. An event counts as an achievement once its calendar day is strictly
   before today. Same-day events are still upcoming.
3. A trip counts once its derived status is completed, which means the
   current day is past its end date.
4. The timeline orders achievements by completion time, most recent
   first. Entries that share a completion time keep a stable order:
   wishes before events before trips.
5. The total score is the plain sum over the timeline. There are no
   multipliers, streaks or decay.
`
