package config

// OptionObserver is notified synchronously after a toggle changes through SetOption.
type OptionObserver func(cfg *Config, name OptionName, enabled bool)

// fullWidthDigits maps full-width digits to their ASCII forms so the
// numeral converter sees a single digit alphabet.
//
//nolint:gochecknoglobals // Fixed lookup table.
var fullWidthDigits = []ReplaceEntry{
	{From: "０", To: "0"},
	{From: "１", To: "1"},
	{From: "２", To: "2"},
	{From: "３", To: "3"},
	{From: "４", To: "4"},
	{From: "５", To: "5"},
	{From: "６", To: "6"},
	{From: "７", To: "7"},
	{From: "８", To: "8"},
	{From: "９", To: "9"},
}

//nolint:gochecknoglobals // Fixed lookup table.
var halfWidthExclams = []ReplaceEntry{
	{From: "!", To: "！"},
	{From: "?", To: "？"},
}

// derivedEntries returns the replace-table entries a toggle implies, if any.
func derivedEntries(name OptionName) []ReplaceEntry {
	switch name {
	case OptionConvertNumerals:
		return fullWidthDigits
	case OptionConvertHalfExclam:
		return halfWidthExclams
	default:
		return nil
	}
}

// SetOption changes a toggle and notifies observers. The default observers
// register the replace-table entries implied by the toggle on enable and
// remove them on disable.
func (c *Config) SetOption(name OptionName, enabled bool) {
	c.ensureObservers()
	if c.Options == nil {
		c.Options = make(map[OptionName]bool)
	}
	c.Options[name] = enabled
	for _, observe := range c.observers {
		observe(c, name, enabled)
	}
}

// Observe registers an additional observer.
func (c *Config) Observe(observer OptionObserver) {
	c.ensureObservers()
	c.observers = append(c.observers, observer)
}

// SyncReplaceTable registers the derived entries of every enabled toggle.
// Disabled toggles leave the table untouched, so an explicitly supplied
// table keeps its own entries.
func (c *Config) SyncReplaceTable() {
	for _, name := range AllOptions() {
		if c.Enabled(name) {
			c.Chars.registerEntries(derivedEntries(name))
		}
	}
}

func (c *Config) ensureObservers() {
	if c.observers == nil {
		c.installDefaultObservers()
	}
}

func (c *Config) installDefaultObservers() {
	c.observers = append(c.observers, replaceTableObserver)
}

// replaceTableObserver keeps the replace table in step with the toggles
// that imply entries in it.
func replaceTableObserver(cfg *Config, name OptionName, enabled bool) {
	entries := derivedEntries(name)
	if len(entries) == 0 {
		return
	}
	if enabled {
		cfg.Chars.registerEntries(entries)
		return
	}
	if cfg.Chars.Replace == nil {
		return
	}
	for _, entry := range entries {
		cfg.Chars.Replace.Delete(entry.From)
	}
}
