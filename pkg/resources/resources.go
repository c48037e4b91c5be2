package resources

// Item is a single resource instance on its way to or from the wire,
// keyed by attribute name.
type Item map[string]any
