package searcher

import (
	"fmt"

	"connect4/game"

	"golang.org/x/exp/rand"
)

type mockAction int

// mockState is a node of an explicit game tree. Its actions are the indices of
// its children.
type mockState struct {
	turn     game.Player
	score    float64
	terminal bool
	sealed   bool // any inspection panics: proves a subtree was pruned
	children []*mockState
}

func (m *mockState) Turn() game.Player {
	return m.turn
}

func (m *mockState) LegalActions(player game.Player) []game.Action {
	m.check()
	if player != m.turn {
		panic(fmt.Sprintf("legal actions asked for %s on %s's turn", player, m.turn))
	}
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = mockAction(i)
	}
	return actions
}

func (m *mockState) Successor(player game.Player, action game.Action) game.State {
	m.check()
	if player != m.turn {
		panic(fmt.Sprintf("successor asked for %s on %s's turn", player, m.turn))
	}
	return m.children[action.(mockAction)]
}

func (m *mockState) IsTerminal() bool {
	m.check()
	return m.terminal
}

func (m *mockState) Score() float64 {
	m.check()
	return m.score
}

func (m *mockState) check() {
	if m.sealed {
		panic("sealed state was inspected")
	}
}

// leaf is a terminal state worth score.
func leaf(score float64) *mockState {
	return &mockState{score: score, terminal: true}
}

func leaves(scores ...float64) []*mockState {
	children := make([]*mockState, len(scores))
	for i, score := range scores {
		children[i] = leaf(score)
	}
	return children
}

func sealed() *mockState {
	return &mockState{sealed: true}
}

func maxNode(children ...*mockState) *mockState {
	return &mockState{turn: game.MaxPlayer, children: children}
}

func minNode(children ...*mockState) *mockState {
	return &mockState{turn: game.MinPlayer, children: children}
}

// stuck is a non-terminal state without moves, a broken game model.
func stuck(turn game.Player) *mockState {
	return &mockState{turn: turn}
}

// randomTree builds a tree of at most depth plies with small integer scores, so
// that ties are frequent. Interior nodes carry a score too, used when the search
// horizon cuts them.
func randomTree(rng *rand.Rand, depth int) *mockState {
	node := &mockState{
		turn:  game.Player(rng.Intn(2)),
		score: float64(rng.Intn(11) - 5),
	}
	if depth == 0 || rng.Intn(6) == 0 {
		node.terminal = true
		return node
	}
	n := 1 + rng.Intn(4)
	for i := 0; i < n; i++ {
		node.children = append(node.children, randomTree(rng, depth-1))
	}
	return node
}

// shuffled copies a tree with every child list permuted.
func shuffled(rng *rand.Rand, node *mockState) *mockState {
	clone := *node
	clone.children = make([]*mockState, len(node.children))
	for i, j := range rng.Perm(len(node.children)) {
		clone.children[i] = shuffled(rng, node.children[j])
	}
	return &clone
}

// nim is a take-away game: each move removes 1 or 2 stones and whoever takes the
// last stone wins. Piles that are a multiple of 3 are lost for the mover.
type nim struct {
	pile int
	turn game.Player
}

type take int

func (n nim) Turn() game.Player {
	return n.turn
}

func (n nim) LegalActions(player game.Player) []game.Action {
	var actions []game.Action
	for t := 1; t <= 2 && t <= n.pile; t++ {
		actions = append(actions, take(t))
	}
	return actions
}

func (n nim) Successor(player game.Player, action game.Action) game.State {
	return nim{pile: n.pile - int(action.(take)), turn: player.Opponent()}
}

func (n nim) IsTerminal() bool {
	return n.pile == 0
}

// Score only knows decided games: the player who just moved took the last stone.
func (n nim) Score() float64 {
	if n.pile > 0 {
		return 0
	}
	if n.turn == game.MinPlayer {
		return 1
	}
	return -1
}
