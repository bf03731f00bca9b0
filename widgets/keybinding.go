package widgets

import cfg "github.com/automoto/neutron/config"

// KeyBinding is the wait-for-input mode of a binding button. Begin arms it
// for an item; the host then feeds the next pressed input to Pick. Losing
// focus or visibility ends the wait without a pick.
type KeyBinding[T, K any] struct {
	menu     Menu
	onPicked func(item T, input K)

	item    T
	target  *Button
	waiting bool
}

// NewKeyBinding creates an idle binding mode. onPicked receives the armed
// item and the picked input.
func NewKeyBinding[T, K any](menu Menu, onPicked func(item T, input K)) *KeyBinding[T, K] {
	return &KeyBinding[T, K]{menu: menu, onPicked: onPicked}
}

// Begin starts waiting for an input for item. target is the button showing
// the wait.
func (k *KeyBinding[T, K]) Begin(item T, target *Button) {
	k.item = item
	k.target = target
	k.waiting = true
}

// IsWaiting reports whether the next input will be picked.
func (k *KeyBinding[T, K]) IsWaiting() bool {
	return k.waiting
}

// Target returns the button of the running wait, or nil.
func (k *KeyBinding[T, K]) Target() *Button {
	if !k.waiting {
		return nil
	}
	return k.target
}

// Pick ends the wait with in. It reports false when nothing was waiting.
func (k *KeyBinding[T, K]) Pick(in K) bool {
	if !k.waiting {
		return false
	}
	item := k.item
	k.finish()
	if k.onPicked != nil {
		k.onPicked(item, in)
	}
	if k.menu != nil {
		k.menu.PlaySound(cfg.SoundMenuSelect)
	}
	return true
}

// Cancel ends the wait without a pick.
func (k *KeyBinding[T, K]) Cancel() {
	if k.waiting {
		k.finish()
	}
}

// Tick cancels the wait once its button lost focus or was hidden.
func (k *KeyBinding[T, K]) Tick() {
	if !k.waiting {
		return
	}
	if k.target == nil || !k.target.IsFocused() || !k.target.IsVisible() {
		k.finish()
	}
}

func (k *KeyBinding[T, K]) finish() {
	var zero T
	k.item = zero
	k.target = nil
	k.waiting = false
}
