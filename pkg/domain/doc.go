/*
Package domain contains the core types shared by the fconsole interpreter and its hosts.

It is kept pure and free of I/O, following the same split as the rest of the module:
the interpreter lives in package console, output goes through the ports.Printer
interface, and hosts (runner, CLI) sit on the outside.

# Key Entities

  - Status: signed result code. Zero is success, positive values are errors,
    negative values are informational signals.
  - Cell: a stack value, either an immediate integer or a bounded reference
    into the current line buffer.
  - PrintOpt: the output kinds understood by a Printer.
  - Hooks: observability callbacks fired per token and per line.
*/
package domain
