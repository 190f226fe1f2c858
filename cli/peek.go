package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/helloproject/hello/core"
	"github.com/urfave/cli/v2"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61DAFB"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61DAFB"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	techStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#282C34")).Background(lipgloss.Color("#61DAFB")).Padding(0, 1)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var newPeekFetcher = func(config *core.Config) core.Fetcher {
	return core.NewAPIClient(config.APIBase, nil)
}

// renderText is the terminal rendition of the page for s.
func renderText(s core.State) string {
	var api strings.Builder
	api.WriteString(headingStyle.Render("API Response:"))
	api.WriteString("\n")
	switch st := s.(type) {
	case core.Success:
		api.WriteString(messageStyle.Render(st.Message))
		api.WriteString("\n")
		api.WriteString(captionStyle.Render(core.MessageCaption))
	case core.Failure:
		api.WriteString(errorStyle.Render(st.Text))
	default:
		api.WriteString("Loading...")
	}

	var features strings.Builder
	features.WriteString(headingStyle.Render("Features:"))
	for _, f := range core.Features {
		features.WriteString("\n" + f)
	}

	tech := make([]string, 0, len(core.TechStack))
	for _, t := range core.TechStack {
		tech = append(tech, techStyle.Render(t))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(core.PageTitle),
		core.PageHeadline,
		boxStyle.Render(api.String()),
		boxStyle.Render(features.String()),
		boxStyle.Render(headingStyle.Render("Tech Stack:")+"\n"+strings.Join(tech, " ")),
	) + "\n"
}

var PeekCommand = &cli.Command{
	Name:  "peek",
	Usage: "Fetch the API once and print the page to the terminal",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
		defer stop()

		view := core.NewView(newPeekFetcher(config))
		view.Debug = config.DebugLogs
		view.Mount(ctx)

		fmt.Println("⏳ Loading...")
		select {
		case <-view.Done():
		case <-ctx.Done():
		}
		view.Unmount()

		state := view.State()
		fmt.Print(renderText(state))

		if core.PhaseOf(state) != core.PhaseSuccess {
			return cli.Exit("", 1)
		}
		return nil
	},
}
