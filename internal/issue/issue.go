// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolchainNotFoundId Id = iota + 1
	SyntaxCheckFailedId
	SyntaxCheckTimedOutId
	ConfigLoadFailedId
	DocsNotFoundId
	WatchFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the quilldoc docs for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	toolchainNotFoundIssue = &Issue{
		id: ToolchainNotFoundId,
		mdMsg: `
# Quill toolchain not found!

Snippet validation needs the quill executable to check syntax, and it
could not be located or started.

## Things you can try:
- Install the quill toolchain and make sure it is on your PATH:
~~~
$ quill version
~~~

- Or point quilldoc at an explicit binary in your config:
~~~cue
language: tool: "/opt/quill/bin/quill"
~~~

- Or for a single run:
~~~
$ quilldoc check --tool /opt/quill/bin/quill docs/
~~~`,
	}

	syntaxCheckFailedIssue = &Issue{
		id: SyntaxCheckFailedId,
		mdMsg: `
# A documentation snippet does not parse!

A quill-tagged code fence was rejected by the syntax checker. The
location above points into the documentation file, already adjusted for
any wrapper boilerplate quilldoc added while checking.

## Things you can try:
- Fix the snippet so it parses, checking it directly:
~~~
$ quill fmt snippet.q
~~~

- If the snippet is intentional pseudo-code, mark the fence so it is
  skipped:
~~~
` + "```quill skip" + `
~~~`,
	}

	syntaxCheckTimedOutIssue = &Issue{
		id: SyntaxCheckTimedOutId,
		mdMsg: `
# Syntax check timed out!

The quill checker ran past the configured deadline on one snippet.

## Things you can try:
- Raise the timeout in your config:
~~~cue
checker: timeout_seconds: 60
~~~

- Check whether the snippet makes the toolchain hang and report it
  upstream if so`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the quilldoc configuration file.

## Configuration file locations:
- Linux: ~/.config/quilldoc/config.cue
- macOS: ~/Library/Application Support/quilldoc/config.cue
- Windows: %APPDATA%\quilldoc\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
docs: ["docs", "guides"]

language: {
  tag:  "quill"
  tool: "quill"
}

checker: {
  timeout_seconds: 10
  jobs:            4
}
~~~`,
	}

	docsNotFoundIssue = &Issue{
		id: DocsNotFoundId,
		mdMsg: `
# Documentation root not found!

One of the configured documentation roots does not exist.

## Things you can try:
- Pass the directories to check explicitly:
~~~
$ quilldoc check docs/ guides/
~~~

- Or fix the roots in your config:
~~~cue
docs: ["docs"]
~~~`,
	}

	watchFailedIssue = &Issue{
		id: WatchFailedId,
		mdMsg: `
# Watch mode stopped!

The filesystem watcher hit an unrecoverable error, usually resource
exhaustion.

## Things you can try (Linux):
- Raise the inotify watch limit:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~

- Watch a narrower directory tree`,
	}

	issues = map[Id]*Issue{
		toolchainNotFoundIssue.Id():   toolchainNotFoundIssue,
		syntaxCheckFailedIssue.Id():   syntaxCheckFailedIssue,
		syntaxCheckTimedOutIssue.Id(): syntaxCheckTimedOutIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		docsNotFoundIssue.Id():        docsNotFoundIssue,
		watchFailedIssue.Id():         watchFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
