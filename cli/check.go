package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/helloproject/hello/core"
	"github.com/urfave/cli/v2"
)

const sampleMessage = "Hello World! It Works!"

type viewCheck struct {
	name    string
	state   core.State
	want    []string
	notWant []string
}

func viewChecks() []viewCheck {
	static := append(append([]string{core.PageTitle, "API Response:"}, core.Features...), core.TechStack...)

	return []viewCheck{
		{
			name:    "pending",
			state:   core.Pending{},
			want:    append([]string{"<p>Loading...</p>"}, static...),
			notWant: []string{`class="error"`, `class="api-message"`},
		},
		{
			name:    "success",
			state:   core.Success{Message: sampleMessage},
			want:    append([]string{"<p>" + sampleMessage + "</p>", core.MessageCaption}, static...),
			notWant: []string{"Loading...", `class="error"`},
		},
		{
			name:    "failure",
			state:   core.Failure{Text: core.ConnectErrorText},
			want:    append([]string{`<p class="error">` + core.ConnectErrorText + "</p>"}, static...),
			notWant: []string{"Loading...", `class="api-message"`},
		},
	}
}

// runCheck renders every view state twice and returns one problem per
// failed check, keyed by state name.
func runCheck(renderer *core.Renderer) map[string]error {
	problems := map[string]error{}

	for _, vc := range viewChecks() {
		var first, second bytes.Buffer
		if err := renderer.Render(&first, vc.state); err != nil {
			problems[vc.name] = fmt.Errorf("render error: %w", err)
			continue
		}
		if err := renderer.Render(&second, vc.state); err != nil {
			problems[vc.name] = fmt.Errorf("render error: %w", err)
			continue
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			problems[vc.name] = fmt.Errorf("output differs between renders")
			continue
		}

		html := first.String()
		for _, marker := range vc.want {
			if !strings.Contains(html, marker) {
				problems[vc.name] = fmt.Errorf("missing %q", marker)
				break
			}
		}
		if problems[vc.name] != nil {
			continue
		}
		for _, marker := range vc.notWant {
			if strings.Contains(html, marker) {
				problems[vc.name] = fmt.Errorf("unexpected %q", marker)
				break
			}
		}
	}

	return problems
}

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Render the page in every view state and validate the output",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		renderer, err := core.NewRenderer("dev", config)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ templates → %v", err), 1)
		}

		problems := runCheck(renderer)
		for _, vc := range viewChecks() {
			if err, failed := problems[vc.name]; failed {
				fmt.Printf("❌ %s → %v\n", vc.name, err)
			} else {
				fmt.Printf("✅ %s\n", vc.name)
			}
		}

		if len(problems) > 0 {
			return cli.Exit("some view states failed to render", 1)
		}

		fmt.Println("✅ All view states rendered successfully.")
		return nil
	},
}
