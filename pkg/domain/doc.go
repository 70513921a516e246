/*
Package domain contains the core types of the step tree.

It is kept pure and free of I/O. Everything the decoder produces and the
tree builder consumes is defined here.

# Key Entities

  - ActionKind: The closed set of step categories emitted by the build engine.
  - Step: One node of the build hierarchy, with its children and Progress.
  - Record: The decoded form of one log line (Message, StepStart, StepResult, DecodeError).
  - StructuralError: A record that references a step the tree has never seen.
*/
package domain
