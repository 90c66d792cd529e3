/*
Package domain contains the core models of the venvctl environment manager.

It describes what a virtual environment looks like on disk, the contract
exchanged with the external interpreter process, and the error taxonomy
shared by the manager and the command line. The package is kept free of
I/O so it can be used by every adapter.

# Key Entities

  - Environment: A directory recognized by its activation-script marker.
  - Layout: Where the marker lives relative to the environment root.
  - Command / ProcessResult: Input and output of a process runner invocation.
  - ProcessError: A non-zero exit of the interpreter, with its captured stderr.
*/
package domain
