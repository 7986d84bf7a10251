package css

// UserAgentStylesheet contains the embedded browser-default rules.
// The selector grammar is one simple selector per rule, so block-level
// display is declared tag by tag.
var UserAgentStylesheet = `
html { display: block; }
body { display: block; }
article { display: block; }
aside { display: block; }
blockquote { display: block; margin-bottom: 16px; }
div { display: block; }
figure { display: block; }
footer { display: block; }
form { display: block; }
header { display: block; }
main { display: block; }
nav { display: block; }
pre { display: block; margin-bottom: 16px; }
section { display: block; }
table { display: block; }

p { display: block; margin-bottom: 16px; }

h1 { display: block; font-size: 32px; font-weight: bold; margin-bottom: 16px; }
h2 { display: block; font-size: 24px; font-weight: bold; margin-bottom: 14px; }
h3 { display: block; font-size: 19px; font-weight: bold; margin-bottom: 12px; }
h4 { display: block; font-size: 16px; font-weight: bold; margin-bottom: 12px; }
h5 { display: block; font-size: 13px; font-weight: bold; margin-bottom: 12px; }
h6 { display: block; font-size: 11px; font-weight: bold; margin-bottom: 12px; }

ul { display: block; margin-left: 40px; margin-bottom: 16px; }
ol { display: block; margin-left: 40px; margin-bottom: 16px; }
li { display: block; margin-bottom: 4px; }
dl { display: block; margin-bottom: 16px; }
dt { display: block; }
dd { display: block; margin-left: 40px; }

b { font-weight: bold; }
strong { font-weight: bold; }
i { font-style: italic; }
em { font-style: italic; }
cite { font-style: italic; }
var { font-style: italic; }

a { color: blue; }
small { font-size: 13px; }
`

// DefaultRules returns the parsed user agent stylesheet. Author rules
// appended after these win specificity ties, which gives page styles
// precedence over the defaults.
func DefaultRules() []Rule {
	return Parse(UserAgentStylesheet)
}
