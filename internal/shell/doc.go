// Package shell implements the interactive menu that collects text from the
// user, renders it with the block font and optionally saves the result.
//
// The shell is a plain read-eval loop over line-oriented input. All state
// that survives between iterations lives in a State value owned by Run.
package shell
