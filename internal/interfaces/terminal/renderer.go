package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
)

const farewellMessage = "Thank you for using SportRadar CLI! Bye!"

var (
	headerStyle   = color.New(color.FgCyan, color.OpBold)
	farewellStyle = color.New(color.FgYellow, color.OpBold)
)

// Renderer writes rankings to the terminal. A whole ranking is flushed with
// a single write.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

func (r *Renderer) RenderRanking(kind playerstats.Kind, players []player.Player) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "\n%s\n", headerStyle.Sprint(kind.String()))
	if len(players) == 0 {
		_, _ = buf.WriteString("No player statistics available for this season.\n")
	}
	for i, p := range players {
		_, _ = fmt.Fprintf(buf, "%d. %s - %d %s\n", i+1, p, p.SeasonValue(kind), kind.Unit())
	}
	_, _ = buf.WriteString("\n")

	if _, err := r.out.Write(buf.B); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return nil
}

func (r *Renderer) Farewell() error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n", farewellStyle.Sprint(farewellMessage)); err != nil {
		return fmt.Errorf("write farewell: %w", err)
	}
	return nil
}
