package render

import "github.com/vango-dev/vroute/pkg/vdom"

// booleanAttrs are attributes rendered as a bare name when true.
var booleanAttrs = map[string]bool{
	"async":     true,
	"autofocus": true,
	"checked":   true,
	"defer":     true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}
