// Package arguments implements the tolerant command-line parser used by the launcher.
//
// Three syntaxes are accepted for every option, and each option has a one letter
// alias:
//
//	--host=0.0.0.0   --host:0.0.0.0   --host 0.0.0.0   -h 0.0.0.0
//	--port=8080      --port:8080      --port 8080      -p 8080
//	--directory=www  --directory:www  --directory www  -d www
//
// # Scanning
//
// Scan walks argv with an explicit index. A token is a flag when it starts with
// '-'. Joined tokens are split on the first '=' (or, failing that, the first ':').
// A bare flag takes the next token as its value unless that token is itself a flag,
// in which case the bare flag is recorded without a value and the following flag is
// still evaluated on its own.
//
// # Presence
//
// Parse records a tri-state per key (Absent, NoValue, WithValue). Resolve merges
// the result over the defaults: only WithValue overrides; a bare flag keeps the
// default and is reported back to the caller.
//
// # Usage
//
//	args, err := arguments.Parse(os.Args)
//	opts, ignored, err := arguments.Resolve(args, arguments.DefaultOptions(dir))
package arguments
