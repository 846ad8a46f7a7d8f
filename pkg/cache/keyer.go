package cache

// Keyer builds cache keys.
type Keyer interface {
	// GraphKey is the key of a rendered solution graph.
	GraphKey(graphHash string, opts GraphKeyOpts) string

	// ReportKey is the key of a rendered report.
	ReportKey(bundleHash string, opts ReportKeyOpts) string
}

// GraphKeyOpts are the options that change a rendered graph.
type GraphKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// ReportKeyOpts are the options that change a rendered report.
type ReportKeyOpts struct {
	Kind    string `json:"kind"`
	Columns bool   `json:"columns"`
	Align   bool   `json:"align"`
	Fracify bool   `json:"fracify"`
	Graph   bool   `json:"graph,omitempty"`

	// Style is a hash of the remaining text options (title, credits,
	// templates).
	Style string `json:"style,omitempty"`
}

// DefaultKeyer hashes inputs and options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// GraphKey implements [Keyer].
func (DefaultKeyer) GraphKey(graphHash string, opts GraphKeyOpts) string {
	return hashKey("graph", graphHash, opts)
}

// ReportKey implements [Keyer].
func (DefaultKeyer) ReportKey(bundleHash string, opts ReportKeyOpts) string {
	return hashKey("report", bundleHash, opts)
}

// ScopedKeyer prefixes the keys of another keyer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key of inner.
// A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GraphKey implements [Keyer].
func (k *ScopedKeyer) GraphKey(graphHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(graphHash, opts)
}

// ReportKey implements [Keyer].
func (k *ScopedKeyer) ReportKey(bundleHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(bundleHash, opts)
}
