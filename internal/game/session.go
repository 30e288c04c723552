package game

// Session is the complete simulation state of one play-through.
// It is owned by a Game and mutated only through Step and Reset.
type Session struct {
	Width, Height float64

	Player    Player
	Obstacles []Obstacle // Insertion ordered
	Apples    []Apple

	Frame   int // Ticks survived
	Elapsed int // Whole seconds survived
	Score   int // Always equal to Elapsed

	SpeedMultiplier float64 // Scales the speed of newly spawned obstacles
	SpawnInterval   float64 // Ticks between obstacle spawns
	ArmorTime       float64 // Seconds of armor remaining; > 0 iff Player.Armor
}

// NewSession creates a session in its initial state for a field of the given size.
func NewSession(width, height float64) *Session {
	s := &Session{Width: width, Height: height}
	s.Reset()
	return s
}

// Reset returns the session to its initial state, keeping the field size.
func (s *Session) Reset() {
	s.Player = NewPlayer(s.Width/2, s.Height/2)
	s.Obstacles = s.Obstacles[:0]
	s.Apples = s.Apples[:0]
	s.Frame = 0
	s.Elapsed = 0
	s.Score = 0
	s.SpeedMultiplier = SpeedMultiplier(0)
	s.SpawnInterval = SpawnInterval(0)
	s.ArmorTime = 0
}

// advanceObstacles moves every obstacle by its velocity and drops the ones that left the field.
func (s *Session) advanceObstacles() {
	kept := s.Obstacles[:0] // reuse backing array
	for _, o := range s.Obstacles {
		o.X += o.DX
		o.Y += o.DY
		if !o.Offscreen(s.Width, s.Height) {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}

// tickArmor counts the armor down by one tick. Returns true if the armor expired.
func (s *Session) tickArmor() bool {
	if !s.Player.Armor {
		return false
	}
	s.ArmorTime -= 1.0 / TickRate
	if s.ArmorTime <= 0 {
		s.Player.Armor = false
		s.ArmorTime = 0
		return true
	}
	return false
}

// grantArmor arms the player for the full duration. Repeated grants do not stack.
func (s *Session) grantArmor() {
	s.Player.Armor = true
	s.ArmorTime = ArmorSeconds
}
