// Package ui builds the terminal interface: three navigable screens (home,
// category picker, word board) plus the suggestion review dialog, wired over
// tview/tcell.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"habla/internal/board"
	"habla/internal/config"
	"habla/internal/feedback"
	"habla/internal/history"
	"habla/internal/phrase"
	"habla/internal/session"
	"habla/internal/speech"
)

// suggestionTopN is how many candidates one suggestion request collects; the
// review dialog then reveals them in batches of phrase.BatchSize.
const suggestionTopN = 10

// Options carries everything the interface needs. Speaker, Recognizer and
// History may be nil; the matching actions then report themselves as
// unconfigured instead of failing.
type Options struct {
	Config     *config.Config
	Log        *zap.Logger
	Engine     *phrase.Engine
	Session    *session.Session
	Speaker    speech.Speaker
	Recognizer speech.Recognizer
	History    *history.Store
}

// App is the running terminal application.
type App struct {
	cfg        *config.Config
	log        *zap.Logger
	sess       *session.Session
	engine     *phrase.Engine
	speaker    speech.Speaker
	recognizer speech.Recognizer
	history    *history.Store

	app   *tview.Application
	pages *tview.Pages
	nav   *Navigator

	brd *board.Board

	homeList      *tview.List
	categoryList  *tview.List
	wordHeader    *tview.TextView
	wordList      *tview.List
	sentenceField *tview.InputField

	reviewList *tview.List
	modalDepth int

	startupNotice string
}

func New(opts Options) *App {
	a := &App{
		cfg:        opts.Config,
		log:        opts.Log,
		sess:       opts.Session,
		engine:     opts.Engine,
		speaker:    opts.Speaker,
		recognizer: opts.Recognizer,
		history:    opts.History,
	}
	if a.cfg == nil {
		a.cfg = config.Default()
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.sess == nil {
		a.sess = session.New(feedback.NewRecorder("", a.log))
	}
	if a.engine == nil {
		a.engine = phrase.NewEngine(phrase.NewStore(), nil, a.log)
	}

	// Startup board load; the words screen reloads on every entry.
	brd, err := board.Load(a.cfg.BoardFile)
	a.brd = brd
	if err != nil {
		a.startupNotice = noticeFor(err)
		a.log.Error("loading board document", zap.Error(err))
	}

	a.app = tview.NewApplication()
	a.pages = tview.NewPages()
	a.nav = NewNavigator(func(s Screen) {
		a.pages.SwitchToPage(s.String())
		a.focus(s)
	})
	a.nav.OnEnter(ScreenCategories, a.rebuildCategories)
	a.nav.OnEnter(ScreenWords, a.enterWords)

	a.buildHome()
	a.buildCategories()
	a.buildWords()
	a.app.SetInputCapture(a.captureKeys)

	return a
}

// Run starts the event loop and blocks until the user quits.
func (a *App) Run() error {
	if a.startupNotice != "" {
		a.showMessage("Data files", a.startupNotice)
	}
	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

// -------------------------------
// Screen construction
// -------------------------------

func (a *App) buildHome() {
	header := tview.NewTextView().
		SetText("habla - communication board").
		SetTextAlign(tview.AlignCenter)

	a.homeList = tview.NewList().
		AddItem("Start", "Pick a category and build a sentence", 's', func() {
			a.goTo(ScreenCategories)
		}).
		AddItem("Download feedback report", "Copy the feedback report to a file", 'r', a.openExport).
		AddItem("Recent utterances", "Sentences spoken before", 'h', a.showHistory).
		AddItem("Quit", "", 'q', func() {
			a.app.Stop()
		})

	footer := tview.NewTextView().
		SetText("Up/Down to move. Enter to select. Esc to quit.").
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(a.homeList, 0, 1, true).
		AddItem(footer, 1, 0, false)

	a.pages.AddPage(ScreenHome.String(), flex, true, true)
}

func (a *App) buildCategories() {
	header := tview.NewTextView().
		SetText("Select a category").
		SetTextAlign(tview.AlignCenter)

	a.categoryList = tview.NewList().ShowSecondaryText(false)

	footer := tview.NewTextView().
		SetText("Enter to open a category. Esc to go back.").
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(a.categoryList, 0, 1, true).
		AddItem(footer, 1, 0, false)

	a.pages.AddPage(ScreenCategories.String(), flex, true, false)
}

func (a *App) buildWords() {
	a.wordHeader = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	a.wordList = tview.NewList().ShowSecondaryText(true)

	a.sentenceField = tview.NewInputField().
		SetLabel("Sentence: ").
		SetFieldWidth(0)
	a.sentenceField.SetChangedFunc(func(text string) {
		a.sess.Sentence.SetText(text)
	})

	footer := tview.NewTextView().
		SetText("Enter: add word  F2: speak  F3: clear  F4: suggestions  F5: voice input  Tab: edit sentence  Esc: back").
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.wordHeader, 2, 0, false).
		AddItem(a.wordList, 0, 1, true).
		AddItem(a.sentenceField, 1, 0, false).
		AddItem(footer, 1, 0, false)

	a.pages.AddPage(ScreenWords.String(), flex, true, false)
}

// -------------------------------
// On-enter hooks
// -------------------------------

func (a *App) rebuildCategories() error {
	a.categoryList.Clear()
	for _, name := range a.brd.Categories() {
		name := name
		a.categoryList.AddItem(displayName(name), "", 0, func() {
			a.sess.SetCategory(name)
			a.goTo(ScreenWords)
		})
	}
	a.categoryList.AddItem("Back", "", 0, func() {
		a.goTo(ScreenHome)
	})
	a.categoryList.SetCurrentItem(0)
	return nil
}

// enterWords reloads the board document so external edits show up without a
// restart, then rebuilds the word list for the session's category.
func (a *App) enterWords() error {
	brd, err := board.Load(a.cfg.BoardFile)
	a.brd = brd

	category := a.sess.Category()
	a.wordHeader.SetText("Category: " + displayName(category))
	a.wordList.Clear()
	entries, _ := a.brd.Entries(category)
	for _, e := range entries {
		word := e.Word
		a.wordList.AddItem(word, e.Image, 0, func() {
			a.addWord(word)
		})
	}
	a.sentenceField.SetText(a.sess.Sentence.Text())
	return err
}

// -------------------------------
// Actions
// -------------------------------

func (a *App) addWord(word string) {
	a.sess.Sentence.Append(word)
	a.sentenceField.SetText(a.sess.Sentence.Text())
}

func (a *App) clearSentence() {
	a.sess.Sentence.Clear()
	a.sentenceField.SetText("")
}

func (a *App) speakSentence() {
	text := a.sess.Sentence.Text()
	if text == "" {
		return
	}
	if a.speaker == nil {
		a.showMessage("Speak", "Text-to-speech is not configured.")
		return
	}
	if err := a.speaker.Speak(context.Background(), text); err != nil {
		a.log.Error("speaking sentence", zap.Error(err))
		a.showMessage("Speak", "Could not speak the sentence: "+err.Error())
		return
	}
	if a.history != nil {
		if err := a.history.Add(text); err != nil {
			a.log.Warn("recording utterance", zap.Error(err))
		}
	}
}

func (a *App) dictate() {
	if a.recognizer == nil {
		a.showMessage("Voice input", "Speech recognition is not configured.")
		return
	}
	text, err := a.recognizer.Listen(context.Background())
	if errors.Is(err, speech.ErrUnintelligible) {
		a.showMessage("Voice input", "Speech was not recognized.")
		return
	}
	if err != nil {
		a.log.Error("speech recognition", zap.Error(err))
		a.showMessage("Voice input", "Recognition service error: "+err.Error())
		return
	}
	a.sess.Sentence.SetText(text)
	a.sentenceField.SetText(a.sess.Sentence.Text())
	a.showMessage("Voice input", "Recognized: "+text)
}

func (a *App) showSuggestions() {
	text := a.sess.Sentence.Text()
	if text == "" {
		a.showMessage("Suggestions", "Please write a sentence first.")
		return
	}
	matches, err := a.engine.Suggest(context.Background(), text, suggestionTopN)
	if errors.Is(err, phrase.ErrNeedMoreWords) {
		a.showMessage("Suggestions", "Enter at least 3 keywords.")
		return
	}
	if err != nil {
		a.showMessage("Suggestions", "Could not compute suggestions: "+err.Error())
		return
	}
	if len(matches) == 0 {
		a.showMessage("Suggestions", "No suggested phrases found.")
		return
	}
	a.openReview(matches, text)
}

// openReview runs the batch review dialog over the suggestion candidates.
func (a *App) openReview(candidates []string, contextText string) {
	review := phrase.NewReview(candidates)

	list := tview.NewList().ShowSecondaryText(false)
	refill := func() {
		list.Clear()
		for _, p := range review.Shown() {
			list.AddItem(p, "", 0, nil)
		}
		list.SetCurrentItem(0)
	}
	refill()

	help := tview.NewTextView().
		SetText("g: good suggestion   b: bad suggestion   Esc: close").
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(help, 1, 0, false)
	flex.SetBorder(true).SetTitle("Suggested phrases")

	list.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch {
		case ev.Key() == tcell.KeyEsc:
			a.closeReview()
			return nil
		case ev.Rune() == 'g':
			chosen, err := review.Good(selectedIndex(list))
			if err != nil {
				a.showMessage("Suggestions", "Select a phrase to judge.")
				return nil
			}
			a.sess.Feedback.Record(chosen, feedback.Good, contextText)
			a.closeReview()
			a.showMessage("Thanks", "Thank you for your feedback.")
			return nil
		case ev.Rune() == 'b':
			chosen, err := review.Bad(selectedIndex(list))
			if err != nil {
				a.showMessage("Suggestions", "Select a phrase to judge.")
				return nil
			}
			a.sess.Feedback.Record(chosen, feedback.Bad, contextText)
			if review.State() == phrase.Exhausted {
				a.closeReview()
				a.showMessage("Suggestions", "No further suggestions.")
				return nil
			}
			refill()
			return nil
		}
		return ev
	})

	a.reviewList = list
	a.openModal("review", centered(flex, 64, 14), list)
}

func (a *App) closeReview() {
	a.reviewList = nil
	a.closeModal("review")
}

func (a *App) openExport() {
	var form *tview.Form
	dismiss := func() { a.closeModal("export") }
	form = tview.NewForm().
		AddInputField("Destination", "feedback_export.csv", 40, nil, nil).
		AddButton("Save", func() {
			dest := form.GetFormItem(0).(*tview.InputField).GetText()
			dismiss()
			if strings.TrimSpace(dest) == "" {
				a.showMessage("Export", "Please enter a destination path.")
				return
			}
			err := feedback.Export(a.cfg.ReportFile, dest)
			switch {
			case errors.Is(err, feedback.ErrNoReport):
				a.showMessage("Export", "No report exists to save yet.")
			case err != nil:
				a.log.Error("exporting feedback report", zap.Error(err))
				a.showMessage("Export", "Could not save the report: "+err.Error())
			default:
				a.showMessage("Export", "Report saved to "+dest)
			}
		}).
		AddButton("Cancel", dismiss)
	form.SetBorder(true).SetTitle("Export feedback report")

	a.openModal("export", centered(form, 60, 9), form)
}

func (a *App) showHistory() {
	if a.history == nil {
		a.showMessage("History", "Utterance history is not configured.")
		return
	}
	recent, err := a.history.Recent(20)
	if err != nil {
		a.log.Error("reading utterance history", zap.Error(err))
		a.showMessage("History", "Could not read history: "+err.Error())
		return
	}
	if len(recent) == 0 {
		a.showMessage("History", "Nothing has been spoken yet.")
		return
	}
	var b strings.Builder
	for _, u := range recent {
		fmt.Fprintf(&b, "%s  %s\n", u.SpokenAt.Local().Format("2006-01-02 15:04"), u.Text)
	}
	a.showMessage("Recent utterances", b.String())
}

// -------------------------------
// Navigation & modal plumbing
// -------------------------------

// goTo transitions screens; a failed entry hook (a corrupt document, say)
// still lands on the screen and the failure surfaces as a message.
func (a *App) goTo(s Screen) {
	if err := a.nav.Go(s); err != nil {
		a.log.Error("entering screen", zap.String("screen", s.String()), zap.Error(err))
		a.showMessage("Data files", noticeFor(err))
	}
}

func (a *App) focus(s Screen) {
	switch s {
	case ScreenHome:
		a.app.SetFocus(a.homeList)
	case ScreenCategories:
		a.app.SetFocus(a.categoryList)
	case ScreenWords:
		a.app.SetFocus(a.wordList)
	}
}

func (a *App) captureKeys(ev *tcell.EventKey) *tcell.EventKey {
	if a.modalDepth > 0 {
		return ev
	}
	switch a.nav.Current() {
	case ScreenHome:
		if ev.Key() == tcell.KeyEsc {
			a.app.Stop()
			return nil
		}
	case ScreenCategories:
		if ev.Key() == tcell.KeyEsc {
			a.goTo(ScreenHome)
			return nil
		}
	case ScreenWords:
		switch ev.Key() {
		case tcell.KeyEsc:
			a.goTo(ScreenCategories)
			return nil
		case tcell.KeyF2:
			a.speakSentence()
			return nil
		case tcell.KeyF3:
			a.clearSentence()
			return nil
		case tcell.KeyF4:
			a.showSuggestions()
			return nil
		case tcell.KeyF5:
			a.dictate()
			return nil
		case tcell.KeyTab:
			a.toggleWordsFocus()
			return nil
		}
	}
	return ev
}

func (a *App) toggleWordsFocus() {
	if a.app.GetFocus() == a.sentenceField {
		a.app.SetFocus(a.wordList)
	} else {
		a.app.SetFocus(a.sentenceField)
	}
}

func (a *App) openModal(name string, p tview.Primitive, focus tview.Primitive) {
	a.modalDepth++
	a.pages.AddPage(name, p, true, true)
	a.app.SetFocus(focus)
}

func (a *App) closeModal(name string) {
	a.pages.RemovePage(name)
	if a.modalDepth > 0 {
		a.modalDepth--
	}
	a.restoreFocus()
}

func (a *App) showMessage(title, text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			a.closeModal("message")
		})
	modal.SetTitle(title)
	a.openModal("message", modal, modal)
}

func (a *App) restoreFocus() {
	if a.modalDepth > 0 && a.reviewList != nil {
		a.app.SetFocus(a.reviewList)
		return
	}
	if a.modalDepth == 0 {
		a.focus(a.nav.Current())
	}
}

// -------------------------------
// Helpers
// -------------------------------

func displayName(category string) string {
	return strings.ReplaceAll(category, "_", " ")
}

func selectedIndex(list *tview.List) int {
	if list.GetItemCount() == 0 {
		return -1
	}
	return list.GetCurrentItem()
}

func noticeFor(err error) string {
	if errors.Is(err, board.ErrMalformed) || errors.Is(err, phrase.ErrMalformed) {
		return "A data file is corrupt or badly formed; continuing with an empty one. " + err.Error()
	}
	return err.Error()
}

// centered wraps p in a fixed-size box in the middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
