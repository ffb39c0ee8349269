package types

// SyncState describes how the persisted state relates to the freshly fetched data
type SyncState string

const (
	StateNoPriorState        SyncState = "NO_PRIOR_STATE"
	StateUnchangedAndLive    SyncState = "UNCHANGED_AND_LIVE"
	StateUnchangedButMissing SyncState = "UNCHANGED_BUT_MISSING"
	StateChangedEditable     SyncState = "CHANGED_EDITABLE"
	StateChangedNotEditable  SyncState = "CHANGED_NOT_EDITABLE"
)

func (s SyncState) String() string {
	return string(s)
}

// SyncAction is what the reconciliation did on the messaging transport
type SyncAction string

const (
	ActionNoop    SyncAction = "noop"
	ActionPublish SyncAction = "publish"
	ActionEdit    SyncAction = "edit"
)

func (a SyncAction) String() string {
	return string(a)
}

// ActionFor maps a reconciliation state onto the transport action it requires.
func ActionFor(state SyncState) SyncAction {
	switch state {
	case StateUnchangedAndLive:
		return ActionNoop
	case StateChangedEditable:
		return ActionEdit
	default:
		return ActionPublish
	}
}
