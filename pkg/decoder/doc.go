/*
Package decoder turns raw internal-json log lines into domain records.

Each line is expected to look like

	@nix {"action":"start","id":1,"parent":0,"type":105,"text":"build foo"}

The leading token is discarded (or checked, see WithPrefix) and the rest is
parsed as a JSON document. Decoding is a pure function: lines that cannot be
interpreted come back as domain.DecodeError rather than as a Go error, so the
caller can report them and carry on with the next line.
*/
package decoder
