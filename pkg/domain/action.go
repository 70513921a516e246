package domain

import "fmt"

// ActionKind is the category of work a build step represents.
// The numeric values are the codes emitted by the build engine.
type ActionKind uint8

const (
	ActionUnknown       ActionKind = 0
	ActionCopyPath      ActionKind = 100
	ActionFileTransfer  ActionKind = 101
	ActionRealise       ActionKind = 102
	ActionCopyPaths     ActionKind = 103
	ActionBuilds        ActionKind = 104
	ActionBuild         ActionKind = 105
	ActionOptimiseStore ActionKind = 106
	ActionVerifyPaths   ActionKind = 107
	ActionSubstitute    ActionKind = 108
	ActionQueryPathInfo ActionKind = 109
	ActionPostBuildHook ActionKind = 110
	ActionBuildWaiting  ActionKind = 111
)

var actionKindNames = map[ActionKind]string{
	ActionUnknown:       "UNKNOWN",
	ActionCopyPath:      "COPY_PATH",
	ActionFileTransfer:  "FILE_TRANSFER",
	ActionRealise:       "REALISE",
	ActionCopyPaths:     "COPY_PATHS",
	ActionBuilds:        "BUILDS",
	ActionBuild:         "BUILD",
	ActionOptimiseStore: "OPTIMISE_STORE",
	ActionVerifyPaths:   "VERIFY_PATHS",
	ActionSubstitute:    "SUBSTITUTE",
	ActionQueryPathInfo: "QUERY_PATH_INFO",
	ActionPostBuildHook: "POST_BUILD_HOOK",
	ActionBuildWaiting:  "BUILD_WAITING",
}

// ParseActionKind maps a raw code onto the closed set of action kinds.
// Codes outside the set are rejected, never coerced to ActionUnknown.
func ParseActionKind(code uint64) (ActionKind, error) {
	if code > 255 {
		return ActionUnknown, fmt.Errorf("%w: %d", ErrUnknownActionKind, code)
	}
	kind := ActionKind(code)
	if _, ok := actionKindNames[kind]; !ok {
		return ActionUnknown, fmt.Errorf("%w: %d", ErrUnknownActionKind, code)
	}
	return kind, nil
}

// String returns the display name of the kind, e.g. "FILE_TRANSFER".
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// ResultKind names the payload carried by a result record.
// Only ResultProgress is interpreted by the tree builder; the others are
// kept for logging.
type ResultKind uint64

const (
	ResultFileLinked       ResultKind = 100
	ResultBuildLogLine     ResultKind = 101
	ResultUntrustedPath    ResultKind = 102
	ResultCorruptedPath    ResultKind = 103
	ResultSetPhase         ResultKind = 104
	ResultProgress         ResultKind = 105
	ResultSetExpected      ResultKind = 106
	ResultPostBuildLogLine ResultKind = 107
)

func (k ResultKind) String() string {
	switch k {
	case ResultFileLinked:
		return "file_linked"
	case ResultBuildLogLine:
		return "build_log_line"
	case ResultUntrustedPath:
		return "untrusted_path"
	case ResultCorruptedPath:
		return "corrupted_path"
	case ResultSetPhase:
		return "set_phase"
	case ResultProgress:
		return "progress"
	case ResultSetExpected:
		return "set_expected"
	case ResultPostBuildLogLine:
		return "post_build_log_line"
	}
	return fmt.Sprintf("result(%d)", uint64(k))
}
