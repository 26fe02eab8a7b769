package entity

// WinnerDraw is how a tie is spelled in persisted records, as opposed to the
// PlayerTie mark used on a live board.
const WinnerDraw = "Draw"

// RecordTimeLayout is the timestamp format stored in the history database.
const RecordTimeLayout = "2006-01-02 15:04:05"

// GameRecord is a finished game as it lives in the history store. The ID is
// assigned by the store on insert; the rest is immutable once finalized.
type GameRecord struct {
	ID       int64  `json:"id"`
	Mode     string `json:"mode"`
	Winner   string `json:"winner"`
	Moves    []Move `json:"move_history"`
	PlayedAt string `json:"date"`
}
