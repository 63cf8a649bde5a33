package filters

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
)

// PanelState tracks the filter-surface lifecycle.
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelLoading
	PanelReady
)

// TagVocabularyLoader loads the selectable tag reference data when the panel opens.
type TagVocabularyLoader interface {
	GetTags() ([]string, error)
}

// FilterStore persists the applied filter blob.
type FilterStore interface {
	Load() (*FilterState, error)
	Save(f FilterState) error
	Clear() error
}

// Panel drives the filter surface: Closed -> Loading -> Ready, then Apply, ClearAll
// or Close. In-memory edits are a draft; only Apply persists them and replaces the
// URL, and only ClearAll erases the persisted blob.
type Panel struct {
	store FilterStore
	tags  TagVocabularyLoader

	state         PanelState
	draft         FilterState
	vocabulary    []string
	validationMsg string
}

// NewPanel constructs a closed panel with its persistence and reference-data
// collaborators injected.
func NewPanel(store FilterStore, tags TagVocabularyLoader) *Panel {
	return &Panel{
		store: store,
		tags:  tags,
		state: PanelClosed,
		draft: DefaultFilterState(),
	}
}

// Open loads the tag vocabulary and seeds the draft from the reconciled sources.
// A vocabulary load failure is surfaced in the log and the panel still reaches
// Ready with an empty vocabulary.
func (p *Panel) Open(urlQuery url.Values) {
	p.state = PanelLoading

	vocabulary, err := p.tags.GetTags()
	if err != nil {
		log.Warn().Err(err).Msg("[Panel] Failed to load tag vocabulary")
		vocabulary = []string{}
	}
	p.vocabulary = vocabulary

	persisted, err := p.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("[Panel] Failed to load persisted filters")
		persisted = nil
	}
	p.draft = Reconcile(urlQuery, persisted)

	p.revalidate()
	p.state = PanelReady
}

// State returns the current lifecycle phase.
func (p *Panel) State() PanelState {
	return p.state
}

// Vocabulary returns the loaded tag reference data.
func (p *Panel) Vocabulary() []string {
	return p.vocabulary
}

// Draft returns the uncommitted in-memory filter state.
func (p *Panel) Draft() FilterState {
	return p.draft
}

// ActiveCount projects the badge value from the draft.
func (p *Panel) ActiveCount() int {
	return ActiveCount(p.draft)
}

// ValidationMessage is the user-visible time-range message, empty when valid.
func (p *Panel) ValidationMessage() string {
	return p.validationMsg
}

// ToggleTag adds or removes a tag from the draft.
func (p *Panel) ToggleTag(tag string) {
	p.draft.Tags = toggleString(p.draft.Tags, tag)
}

// TogglePrice adds or removes a price tier from the draft.
func (p *Panel) TogglePrice(price int) {
	p.draft.Prices = toggleInt(p.draft.Prices, price)
}

// ToggleRating adds or removes a star threshold from the draft.
func (p *Panel) ToggleRating(stars int) {
	p.draft.Rating = toggleInt(p.draft.Rating, stars)
}

// SetTimeFrom updates the lower bound and re-validates the range reactively.
func (p *Panel) SetTimeFrom(display string) {
	p.draft.TimeFrom = display
	p.revalidate()
}

// SetTimeTo updates the upper bound and re-validates the range reactively.
func (p *Panel) SetTimeTo(display string) {
	p.draft.TimeTo = display
	p.revalidate()
}

// Apply persists the draft, closes the panel and returns the wire query for the
// navigation the caller performs. With an invalid time range Apply is a no-op:
// the panel stays Ready and the validation message remains exposed.
func (p *Panel) Apply() (url.Values, error) {
	if p.validationMsg != "" {
		return nil, ErrInvalidTimeRange
	}

	if err := p.store.Save(p.draft); err != nil {
		return nil, fmt.Errorf("[Panel] failed to persist filters: %w", err)
	}

	wire := EncodeWire(p.draft)
	p.state = PanelClosed
	return wire, nil
}

// ClearAll resets the draft to defaults and erases the persisted blob. The URL is
// left untouched until the next Apply navigation.
func (p *Panel) ClearAll() error {
	p.draft = DefaultFilterState()
	p.revalidate()
	if err := p.store.Clear(); err != nil {
		return fmt.Errorf("[Panel] failed to clear persisted filters: %w", err)
	}
	return nil
}

// Close discards uncommitted edits with no persistence side effect.
func (p *Panel) Close() {
	p.draft = DefaultFilterState()
	p.validationMsg = ""
	p.state = PanelClosed
}

func (p *Panel) revalidate() {
	if err := ValidateTimeRange(p.draft); err != nil {
		p.validationMsg = err.Error()
		return
	}
	p.validationMsg = ""
}

func toggleString(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, item)
}

func toggleInt(list []int, item int) []int {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, item)
}
