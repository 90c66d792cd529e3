/*
Package ports defines the driven ports (interfaces) of the venvctl manager.

These interfaces decouple environment management from the operating system,
so the manager can be exercised against fakes without a real interpreter or
a real terminal.

# Key Interfaces

  - ProcessRunner: Runs an external executable and captures its result.
  - Confirmer: Asks the user a yes/no question before a destructive action.
*/
package ports
