// Package render draws a leaderboard board as HTML or as a terminal table.
package render

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"catanboard/internal/application"
	"catanboard/internal/models"
)

const DefaultContainerID = "leaderboard-container"

//go:embed templates/*.html templates/style.css
var templateFS embed.FS

var (
	styleCSS  = mustReadStyle()
	templates = template.Must(template.New("render").ParseFS(templateFS, "templates/*.html"))
)

// HTMLOptions configures the generated markup.
type HTMLOptions struct {
	// BasePath is prefixed to profile icon references.
	BasePath string
	Title    string
	// ContainerID is the element the leaderboard is rendered into.
	ContainerID string
	// ToggleAction is where the sort button submits to; the next sort mode is
	// sent as the "sort" field.
	ToggleAction string
	ToggleMethod string
}

type view struct {
	HTMLOptions
	Board    application.Board
	Podium   []podiumPlace
	Rest     []listItem
	NextSort models.SortMode
	CSS      template.CSS
}

type podiumPlace struct {
	Position int
	Player   *models.RankedPlayer
	Icon     string
}

type listItem struct {
	models.RankedPlayer
	Icon string
}

// HTML writes the leaderboard fragment: sort control, podium, list, or the
// "No players yet" placeholder. A nil writer means there is nowhere to render
// and is a no-op.
func HTML(w io.Writer, board application.Board, opts HTMLOptions) error {
	if w == nil {
		return nil
	}
	return templates.ExecuteTemplate(w, "leaderboard", newView(board, opts))
}

// Page writes a standalone HTML document around the leaderboard fragment.
func Page(w io.Writer, board application.Board, opts HTMLOptions) error {
	if w == nil {
		return nil
	}
	return templates.ExecuteTemplate(w, "page", newView(board, opts))
}

func newView(board application.Board, opts HTMLOptions) view {
	if opts.ContainerID == "" {
		opts.ContainerID = DefaultContainerID
	}
	if opts.ToggleMethod == "" {
		opts.ToggleMethod = http.MethodGet
	}
	if opts.Title == "" {
		opts.Title = "Leaderboard"
	}

	v := view{
		HTMLOptions: opts,
		Board:       board,
		NextSort:    board.SortBy.Toggle(),
		CSS:         styleCSS,
	}
	for _, slot := range board.PodiumSlots() {
		place := podiumPlace{Position: slot.Position, Player: slot.Player}
		if slot.Player != nil {
			place.Icon = application.ProfilePath(slot.Player.Player, opts.BasePath)
		}
		v.Podium = append(v.Podium, place)
	}
	for _, p := range board.Rest {
		v.Rest = append(v.Rest, listItem{RankedPlayer: p, Icon: application.ProfilePath(p.Player, opts.BasePath)})
	}
	return v
}

func mustReadStyle() template.CSS {
	data, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		panic(err)
	}
	return template.CSS(data)
}
