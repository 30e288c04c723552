package game

// Cue is a fire-and-forget audio/visual signal raised by the game.
type Cue int

const (
	CueMusicStart Cue = iota
	CueMusicStop
	CueApplePickup
	CueArmorGained
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	case CueApplePickup:
		return "apple-pickup"
	case CueArmorGained:
		return "armor-gained"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Presenter receives everything the player should see or hear.
type Presenter interface {
	ShowScore(score int)
	ShowTimer(seconds int)
	// ShowArmor shows the remaining armor time, or hides the indicator when active is false.
	ShowArmor(active bool, remaining float64)
	ShowStart(best int)
	ShowGameOver(final, best int)
	HideOverlays()
	Cue(c Cue)
}

// ScoreStore persists the best score between sessions.
// BestScore returns 0 when nothing valid has been stored yet.
type ScoreStore interface {
	BestScore() int
	SaveBestScore(score int) error
}

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) ShowScore(int)           {}
func (NopPresenter) ShowTimer(int)           {}
func (NopPresenter) ShowArmor(bool, float64) {}
func (NopPresenter) ShowStart(int)           {}
func (NopPresenter) ShowGameOver(int, int)   {}
func (NopPresenter) HideOverlays()           {}
func (NopPresenter) Cue(Cue)                 {}
