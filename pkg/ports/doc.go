/*
Package ports defines the interfaces between the step tree and its host.

The tree builder never writes anywhere itself: free-text messages and bad
lines are handed to sinks, and rendering happens through a Visitor.

# Key Interfaces

  - MessageSink: Receives free-text message records.
  - ErrorSink: Receives lines that failed decoding (and, in lenient mode, structural violations).
  - Visitor: Per-step callback used by renderers.
*/
package ports
