// Package writers turns joined rows into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV layout, JSON/JSONL).
//   • The reporter stays domain-only; the app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
