package parser

// DefaultMaxDepth bounds the nesting of selection sets, list and object
// literals and list types when Options.MaxDepth is left at zero.
const DefaultMaxDepth = 256

// Options tunes a parse. The zero value is the default configuration.
type Options struct {
	// NoLocation leaves every node's Loc as the zero Location.
	NoLocation bool `yaml:"no_location" json:"no_location" split_words:"true"`

	// NoSource keeps offsets in each Loc but drops the Source reference.
	NoSource bool `yaml:"no_source" json:"no_source" split_words:"true"`

	// MaxDepth is the deepest nesting accepted before the parse fails.
	MaxDepth int `yaml:"max_depth" json:"max_depth" split_words:"true"`

	// AllowNullValue accepts the experimental `null` literal in value
	// positions. Without it `null` is a syntax error.
	AllowNullValue bool `yaml:"allow_null_value" json:"allow_null_value" split_words:"true"`
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
