/*
Package ports defines the driven ports (interfaces) of the fconsole interpreter.

The interpreter never performs device I/O itself. Everything it prints goes
through a Printer supplied by the host, so the same core runs against a
terminal, a test recorder or a JSON reporter.

# Key Interfaces

  - Printer: receives (kind, value) pairs from command handlers.
*/
package ports
