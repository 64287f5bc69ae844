package entity

// Snapshot is the persisted shape of a game.
type Snapshot struct {
	ID            string     `json:"id,omitempty"`
	Board         []string   `json:"board"`
	CurrentPlayer string     `json:"currentPlayer"`
	Mode          *string    `json:"mode"`
	AITier        string     `json:"aiTier"`
	Active        bool       `json:"active"`
	Scores        Scoreboard `json:"scores"`
}
