package injector

// Hooks holds optional callbacks for injector lifecycle events. All fields
// are nil by default; set only the ones you care about. A Hooks value must
// not be mutated once passed to [WithHooks].
//
// Pattern: Observer — the injector stays silent (no logging) and lets callers
// attach logging or metrics here.
type Hooks struct {
	// OnInstall receives the sorted keys of the merged services record.
	OnInstall func(keys []string)
	// OnInject fires before an injected function runs.
	OnInject func()
	// OnPassThrough fires before an invocation is handed to the next handler.
	OnPassThrough func()
}

func (h *Hooks) emitInstall(keys []string) {
	if h.OnInstall != nil {
		h.OnInstall(keys)
	}
}

func (h *Hooks) emitInject() {
	if h.OnInject != nil {
		h.OnInject()
	}
}

func (h *Hooks) emitPassThrough() {
	if h.OnPassThrough != nil {
		h.OnPassThrough()
	}
}
