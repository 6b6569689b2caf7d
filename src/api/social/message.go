package social

import "strings"

// FormatResultMessage renders the public announcement for one result.
func FormatResultMessage(gameName, drawDate, drawTime, winningNumbers, machineNumbers string) string {
	var b strings.Builder
	b.WriteString("🎰 Rand Lottery Results\n\n")
	b.WriteString("Game: " + gameName + "\n")
	b.WriteString("Draw: " + drawDate + " at " + drawTime + "\n\n")
	b.WriteString("🎯 Winning Numbers: " + winningNumbers + "\n")
	if machineNumbers != "" {
		b.WriteString("🔢 Bonus: " + machineNumbers + "\n")
	}
	b.WriteString("\n#RandLottery #" + strings.ReplaceAll(gameName, " ", ""))
	return b.String()
}
