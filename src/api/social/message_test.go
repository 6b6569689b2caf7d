package social

import (
	"strings"
	"testing"
)

func TestFormatResultMessage(t *testing.T) {
	t.Run("with machine numbers", func(t *testing.T) {
		got := FormatResultMessage("STAR LOTTO", "14 Mar 2025", "07:30 PM", "5,12,30", "7,8")
		want := "🎰 Rand Lottery Results\n\n" +
			"Game: STAR LOTTO\n" +
			"Draw: 14 Mar 2025 at 07:30 PM\n\n" +
			"🎯 Winning Numbers: 5,12,30\n" +
			"🔢 Bonus: 7,8\n" +
			"\n#RandLottery #STARLOTTO"
		if got != want {
			t.Errorf("message = %q, want %q", got, want)
		}
	})

	t.Run("without machine numbers", func(t *testing.T) {
		got := FormatResultMessage("BINGO4", "14 Mar 2025", "07:30 PM", "1,2,3", "")
		if strings.Contains(got, "Bonus") {
			t.Errorf("message must omit bonus line: %q", got)
		}
		if !strings.HasSuffix(got, "#RandLottery #BINGO4") {
			t.Errorf("message must end with hashtags: %q", got)
		}
	})
}
