// Package config holds shared constants.
package config

// MaxEvaluationDepth bounds AST nesting during evaluation so pathological
// inputs fail with a diagnostic instead of exhausting the stack.
const MaxEvaluationDepth = 10000

// DefaultEnvironmentFile is the environment file the CLI looks for when
// --env is not given.
const DefaultEnvironmentFile = "funexpr.yaml"

// HistoryFileName is the REPL history file, stored in the user home directory.
const HistoryFileName = ".funexpr_history"

// SourceFileExtensions lists recognized expression source file extensions.
var SourceFileExtensions = []string{".fx", ".expr"}
