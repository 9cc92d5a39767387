// Package writers turns chain records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (CSV rows, JSONL wire form).
//   - The chain stays domain-only; the app stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
//   - CSV rows reach the sink as they complete, so an interrupted run
//     leaves a valid prefix of the table.
package writers
