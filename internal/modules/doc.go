// Package modules contains the application's feature modules.
//
// Each subdirectory implements `module.Module`. The list of active modules
// lives in `internal/app/modules.go`; the server registers and boots them in
// order at startup.
package modules
