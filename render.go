package ballotkit

import (
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/ballotkit/ballotkit/pkg/ballot"
	"github.com/ballotkit/ballotkit/tabulate"
)

// Rendering is the display-side collaborator contract: a pure function
// of the question and an optional previously cast vote. It is never
// invoked during tabulation and mutates no ballot or counting state.

var pluralityTemplate = template.Must(template.New("plurality").Parse(`<h2>{{.Title}}</h2>
<p class="instructions">
 Select the candidate you wish to vote for.
</p>
<ul>
{{- range .Options}}
  <li>
    <input type="radio" name="{{$.ID}}" value="{{.}}"{{if $.IsPrior .}} checked="checked"{{end}} />
    {{.}}
  </li>
{{- end}}
</ul>
`))

var instantRunoffTemplate = template.Must(template.New("instant-runoff").Parse(`<h2>{{.Title}}</h2>
<p class="description">
 {{.Description}}
</p>
<p class="instructions">
 Drag candidates from the list on the right to the list on the left in the
 order of preference.
</p>
<div id="{{.ID}}">
{{- range $i, $choice := .Prior}}
  <input type="text" name="{{$.ID}}[{{$i}}]" value="{{$choice}}" />
{{- end}}
</div>
<div>
<h3>Ranked Candidates</h3>
<ul id="{{.ID}}-ranked">
{{- range .Prior}}
  <li>{{.}}</li>
{{- end}}
</ul>
</div>
<div>
<h3><b>Un</b>ranked Candidates</h3>
<ul id="{{.ID}}-unranked">
{{- range .Unranked}}
  <li>{{.}}</li>
{{- end}}
</ul>
</div>
`))

// Render writes the question's HTML form to w. If prior is non-empty it
// is rendered as the already-cast vote: pre-selected for plurality,
// pre-ranked for instant-runoff. Questions whose method has no renderer
// report ErrRuleUnavailable.
func (q *Question) Render(w io.Writer, prior []ballot.Choice) error {
	data := renderData{Question: q, Prior: prior}
	switch q.Method {
	case MethodPlurality:
		return pluralityTemplate.Execute(w, data)
	case MethodInstantRunoff:
		return instantRunoffTemplate.Execute(w, data)
	default:
		return errors.Wrapf(tabulate.ErrRuleUnavailable, "no renderer for %s questions", q.Method)
	}
}

type renderData struct {
	*Question
	Prior []ballot.Choice
}

func (d renderData) IsPrior(c ballot.Choice) bool {
	for _, p := range d.Prior {
		if p == c {
			return true
		}
	}
	return false
}

// Unranked returns the options the prior vote has not ranked, in
// declaration order.
func (d renderData) Unranked() []ballot.Choice {
	out := make([]ballot.Choice, 0, len(d.Options))
	for _, option := range d.Options {
		if !d.IsPrior(option) {
			out = append(out, option)
		}
	}
	return out
}
