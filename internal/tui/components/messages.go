package components

import "github.com/Veraticus/swipe-grocery/internal/model"

// UndoLikeRequestMsg asks the deck to take an item back out of the cart.
type UndoLikeRequestMsg struct {
	Item model.Item
}
