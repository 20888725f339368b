package tween

import "github.com/tanema/gween"

// Action reacts to one running tween and may queue tweens to start once it
// finishes.
type Action struct {
	nexts    []func(p *Player)
	OnChange func(float32)
	onFinish []func()
}

func (a *Action) AddOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// Next chains t after the receiver and returns the action driving it.
func (a *Action) Next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(p *Player), 0)
	}
	a.nexts = append(a.nexts,
		func(p *Player) {
			p.Tweens[t] = action
		})
	return action
}

// Player runs every active tween once per frame.
type Player struct {
	Tweens map[*gween.Tween]*Action
}

func NewPlayer() *Player {
	return &Player{Tweens: make(map[*gween.Tween]*Action)}
}

func (p *Player) Add(t *gween.Tween, a *Action) {
	p.Tweens[t] = a
}

func (p *Player) Len() int {
	return len(p.Tweens)
}

// Update advances all tweens by dt seconds. Chained tweens start on the
// next Update.
func (p *Player) Update(dt float32) {
	chained := make([]func(p *Player), 0)
	for t, a := range p.Tweens {
		curr, finished := t.Update(dt)
		if a.OnChange != nil {
			a.OnChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			chained = append(chained, a.nexts...)
			delete(p.Tweens, t)
		}
	}
	for _, next := range chained {
		next(p)
	}
}
