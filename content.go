package porkbelly

// ZoneKind selects the behavior a content zone triggers.
type ZoneKind uint8

const (
	ZoneStage      ZoneKind = iota // stage banner and soundtrack swap
	ZoneStageClear                 // banner, stage_complete sound, firework burst
	ZonePartyGate                  // move guests to their party positions
	ZoneParty                      // finale: party music, jumping guests, credits
)

// ZoneSpec is a content-table entry for a trigger zone.
type ZoneSpec struct {
	Name   string
	Kind   ZoneKind
	Center Vec2
	Radius float64
	Text   string
	Track  string
}

// SignSpec is a static hint text in the world.
type SignSpec struct {
	Text string
	Pos  Vec2
}

// Content is the full set of content tables for one session.
type Content struct {
	Actors  []ActorSpec
	Zones   []ZoneSpec
	Signs   []SignSpec
	Credits string
	// PartyGreeting is shown in each guest's bubble during the finale.
	PartyGreeting string
}

// Spawn returns the player's spawn position.
func (c *Content) Spawn() Vec2 {
	for _, a := range c.Actors {
		if a.Player {
			return a.Pos
		}
	}
	return Vec2{}
}

var (
	foxVoices   = []string{"fox1", "fox2", "fox3", "fox4"}
	pandaVoices = []string{"panda1", "panda2", "panda3", "panda4"}
	ghastVoices = []string{"ghast1", "ghast2", "ghast3", "ghast4"}
	pigVoices   = []string{"pig1", "pig2", "pig3"}
)

const creditsText = `[CREDITS]

PROGRAMMING
Raymond W

PIXEL ART
Martin Wörister
Clarisse R

QA TESTING
Alea E

MUSIC + SFX
Mojang/Minecraft
Saja Boys

Powered by
Ebitengine
`

// DefaultContent returns the world's actors, zones and texts. NPCs come first
// and the player last, matching the order the world was authored in.
func DefaultContent() *Content {
	return &Content{
		Actors: []ActorSpec{
			{
				Name: "Foxy", Sheet: "animals", Anim: "fox",
				Pos: Vec2{6350, 300}, Size: Vec2{28.8, 28.8},
				Voices:   foxVoices,
				PartyPos: Vec2{23265, 250},
				Dialogue: []string{
					"Oh, hello there Porkbelly",
					"How did a pig get up here....?",
					"A party?",
					"Sure, I can go!",
					"I'll see you at the party Porkbelly!",
				},
			},
			{
				Name: "MacPanda", Sheet: "animals", Anim: "panda_idle",
				Pos: Vec2{19550, 270}, Size: Vec2{28.8, 28.8},
				Voices:   pandaVoices,
				PartyPos: Vec2{23230, 290},
				Dialogue: []string{
					"*sneeze*",
					"Oh hi!",
					"How did you climb up here?",
					"You're having a party?",
					"Oh, that's soon!",
					"Yeah I can go to it",
					"Thanks for the invite, stinky!",
				},
			},
			{
				Name: "Happy", Sheet: "animals", Anim: "ghast_idle",
				Pos: Vec2{10256, 140}, Size: Vec2{28.8, 28.8},
				Voices:   ghastVoices,
				PartyPos: Vec2{23055, 235},
				Dialogue: []string{
					":o   a pig!",
					"Hello there pig!",
					"Nice to meet you Porkbelly",
					"A party later sounds fun!",
					"Okay, I'll be there!",
					"See you at the party, new friend!",
				},
			},
			{
				Name: "Hammy", Sheet: "animals_2", Anim: "hammy",
				Pos: Vec2{4570, 730}, Size: Vec2{3.2, 3.2}, Gravity: true,
				Voices:   pigVoices,
				PartyPos: Vec2{23040, 290},
				Dialogue: []string{
					"Hi Ms. Porkbelly! :D",
					"Oh a party later?",
					"Sure, I would love to go!",
					"You should ask the other pigs too",
					"See you at the party!",
				},
			},
			{
				Name: "Bacon", Sheet: "animals_2", Anim: "bacon",
				Pos: Vec2{21770, 800}, Size: Vec2{16, 18.4}, Gravity: true,
				Voices:   pigVoices,
				PartyPos: Vec2{23088, 290},
				Dialogue: []string{
					"Oh hi hi!",
					"A party? Up the hill?",
					"Oh, and it starts soon?",
					"I can't wait to go!",
					"I'll see you there Porkbelly!",
				},
			},
			{
				Name: "Porkchop", Sheet: "animals_2", Anim: "porkchop",
				Pos: Vec2{13800, 800}, Size: Vec2{16, 16}, Gravity: true,
				Voices:   pigVoices,
				PartyPos: Vec2{23190, 290},
				Dialogue: []string{
					"Hello Porkbelly!",
					"I would love to go to a party, when is it?",
					"Oh okay, I can go later today!",
					"Thanks for the invite Porkbelly!",
				},
			},
			{
				Name: "Pika", Sheet: "animals_2", Anim: "pika",
				Pos: Vec2{9400, 500}, Size: Vec2{21.6, 18}, Scale: 0.75, Gravity: true,
				Voices:   foxVoices,
				PartyPos: Vec2{23133, 290},
				Dialogue: []string{
					"*woof* thank you for rescuing me! *woof*",
				},
			},
			{
				Name: "Porkbelly", Sheet: "player", Anim: AnimIdle,
				Pos: Vec2{510, 940}, Size: Vec2{14, 16}, Gravity: true, Player: true,
			},
		},
		Zones: []ZoneSpec{
			{Name: "forest", Kind: ZoneStage, Center: Vec2{2000, 720}, Radius: 50, Text: "Stage 1: The Forest", Track: "forest"},
			{Name: "caves", Kind: ZoneStage, Center: Vec2{6500, 900}, Radius: 50, Text: "Stage 2: The Caves", Track: "cave"},
			{Name: "desert", Kind: ZoneStage, Center: Vec2{12100, 700}, Radius: 50, Text: "Stage 3: The Desert", Track: "desert"},
			{Name: "plains", Kind: ZoneStage, Center: Vec2{16300, 730}, Radius: 50, Text: "Stage 4: The Plains", Track: "plains"},
			{Name: "stage1-clear", Kind: ZoneStageClear, Center: Vec2{6130, 827}, Radius: 100, Text: "Stage  1  Complete!"},
			{Name: "stage2-clear", Kind: ZoneStageClear, Center: Vec2{11500, 730}, Radius: 100, Text: "Stage  2  Complete!"},
			{Name: "stage3-clear", Kind: ZoneStageClear, Center: Vec2{16000, 707}, Radius: 100, Text: "Stage  3  Complete!"},
			{Name: "party-gate", Kind: ZonePartyGate, Center: Vec2{22400, 467}, Radius: 200},
			{Name: "party", Kind: ZoneParty, Center: Vec2{23250, 300}, Radius: 200, Text: "Happy birthday bby!", Track: "party"},
		},
		Signs: []SignSpec{
			{Text: "Hurry to the party! ->\nInvite anyone you see along the way!", Pos: Vec2{418, 850}},
			{Text: "Click on other animals to\ninvite them to the party!", Pos: Vec2{4570, 770}},
		},
		Credits:       creditsText,
		PartyGreeting: "Happy Birthday Alexia!",
	}
}
