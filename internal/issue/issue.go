// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ProjectManifestNotFoundId
	ExternalToolFailedId
	ToolNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Rebrand config missing or invalid!

The rebrand document could not be loaded, so nothing was changed.

## Expected document (rebrand.yaml in the project root):
~~~yaml
application_name: "Acme App"
flavor: dev            # one of: dev, uat, prod
packageName: com.acme.app
version: "1.2.3"
build: "45"
~~~

## Things you can try:
- Create a rebrand.yaml at the project root with the five keys above
- Check that no value is empty and that flavor is dev, uat or prod
- JSON and TOML documents with the same keys are accepted as well`,
	}

	projectManifestNotFoundIssue = &Issue{
		id: ProjectManifestNotFoundId,
		mdMsg: `
# No project manifest found!

We looked for a pubspec.yaml at the project root but couldn't find one, so
this doesn't look like a Flutter project.

## Things you can try:
- Run the tool from the project root (the directory holding pubspec.yaml)
- Check that the project checkout is complete`,
	}

	externalToolFailedIssue = &Issue{
		id: ExternalToolFailedId,
		mdMsg: `
# External tool failed!

A platform tool exited with a non-zero status after the identity files were
already rewritten. The rewritten files are kept; fix the tool problem and
re-run to finish (the pipeline is safe to re-run).

## Things you can try:
- Read the tool output above for the concrete failure
- Run the failing command by hand from the project root:
~~~
$ flutter pub run flutter_launcher_icons:main
$ flutter pub get
~~~`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Platform tool not found!

The flutter command is not on your PATH, so icon generation and dependency
resolution could not run.

## Things you can try:
- Install the Flutter SDK: https://docs.flutter.dev/get-started/install
- Check that 'flutter --version' works in the same shell`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		projectManifestNotFoundIssue.Id(): projectManifestNotFoundIssue,
		externalToolFailedIssue.Id():      externalToolFailedIssue,
		toolNotFoundIssue.Id():            toolNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
