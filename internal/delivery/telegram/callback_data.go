package telegram

import (
	"strconv"
	"strings"

	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionCategory = "cat"    // pick a category and start a round
	actionClue     = "clue"   // reveal the next clue
	actionAnswer   = "ans"    // submit the option at an index
	actionGiveUp   = "giveup" // resolve the round without an answer
	actionNext     = "next"   // start a new round in the same category
	actionMenu     = "menu"   // show the category picker
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildCategoryCallback builds callback data for starting a round in a category.
func buildCategoryCallback(c entities.Category) string {
	return callbackData{
		Action: actionCategory,
		Params: []string{string(c)},
	}.encode()
}

// buildClueCallback builds callback data for revealing the next clue.
func buildClueCallback() string {
	return actionClue
}

// buildAnswerCallback builds callback data for submitting the option at index.
func buildAnswerCallback(index int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// buildGiveUpCallback builds callback data for giving up the round.
func buildGiveUpCallback() string {
	return actionGiveUp
}

// buildNextRoundCallback builds callback data for starting the next round.
func buildNextRoundCallback() string {
	return actionNext
}

// buildMenuCallback builds callback data for opening the category picker.
func buildMenuCallback() string {
	return actionMenu
}
