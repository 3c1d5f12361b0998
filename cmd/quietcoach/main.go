package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hortyhort/QuietCoach-sub000/internal/audio"
	"github.com/Hortyhort/QuietCoach-sub000/internal/cli"
	"github.com/Hortyhort/QuietCoach-sub000/internal/coach"
	"github.com/Hortyhort/QuietCoach-sub000/internal/logging"
	"github.com/Hortyhort/QuietCoach-sub000/internal/metrics"
	"github.com/Hortyhort/QuietCoach-sub000/internal/profile"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scenario"
	"github.com/Hortyhort/QuietCoach-sub000/internal/scoring"
	"github.com/Hortyhort/QuietCoach-sub000/internal/session"
	"github.com/Hortyhort/QuietCoach-sub000/internal/transcript"
	"github.com/Hortyhort/QuietCoach-sub000/internal/ui"
)

var (
	version = "0.0.1"
)

// rescoreWorkers bounds concurrent re-scoring. Scoring is pure per record, so
// records can be re-scored in parallel without ordering concerns.
const rescoreWorkers = 4

// CLI defines the command-line interface
type CLI struct {
	Version    bool     `short:"v" help:"Show version information"`
	Profile    string   `short:"p" type:"path" help:"Path to YAML scoring profile file (optional)"`
	Transcript string   `short:"t" type:"path" help:"Path to transcription JSON for the recording (single file only)"`
	Scenario   string   `short:"s" default:"freeform" help:"Scenario identifier for session history"`
	Category   string   `short:"c" default:"presentation" help:"Scenario category (interview, presentation, smalltalk, negotiation, conflict)"`
	Sessions   string   `type:"path" default:".quietcoach/sessions" help:"Directory for session history"`
	Rescore    bool     `help:"Re-score stored sessions with the current profile instead of scoring new recordings"`
	Logs       bool     `help:"Save a feedback report next to each recording"`
	Plain      bool     `help:"Plain output without the interactive interface"`
	Files      []string `arg:"" name:"files" help:"WAV recordings to score" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("quietcoach"),
		kong.Description("Rehearsal feedback scoring for conversation practice"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if cliArgs.Rescore {
		if len(cliArgs.Files) > 0 {
			cli.PrintError("--rescore re-runs stored sessions and takes no input files")
			os.Exit(1)
		}
	} else if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	category := scenario.Category(cliArgs.Category)
	if !category.Valid() {
		cli.PrintError(fmt.Sprintf("Unknown category %q", cliArgs.Category))
		os.Exit(1)
	}

	if cliArgs.Transcript != "" && len(cliArgs.Files) > 1 {
		cli.PrintError("--transcript applies to a single recording")
		os.Exit(1)
	}

	profiles := profile.DefaultSet()
	if cliArgs.Profile != "" {
		loaded, err := profile.LoadSet(cliArgs.Profile)
		if err != nil {
			cli.PrintError(fmt.Sprintf("Loading profile: %v", err))
			os.Exit(1)
		}
		profiles = loaded
	}

	store, err := session.NewStore(cliArgs.Sessions)
	if err != nil {
		cli.PrintError(fmt.Sprintf("Opening session store: %v", err))
		os.Exit(1)
	}

	var jobs []scoreJob
	workers := 1
	if cliArgs.Rescore {
		jobs, err = rescoreJobs(cliArgs, profiles, store)
		if err != nil {
			cli.PrintError(fmt.Sprintf("Reading session history: %v", err))
			os.Exit(1)
		}
		if len(jobs) == 0 {
			cli.PrintError("No stored sessions with a source recording to re-score")
			os.Exit(1)
		}
		workers = rescoreWorkers
	} else {
		jobs = scoringJobs(cliArgs, profiles, store, category)
	}

	if cliArgs.Plain {
		runPlain(jobs)
		return
	}
	runInteractive(jobs, workers)
}

// scoreJob is one unit of scoring work with a display name for progress.
type scoreJob struct {
	name string
	run  func() (*scoreResult, error)
}

// scoringJobs builds one job per input recording, scored against the shared
// scenario. History deltas depend on save order, so these run one at a time.
func scoringJobs(cliArgs *CLI, profiles *profile.Set, store *session.Store, category scenario.Category) []scoreJob {
	scorer := &fileScorer{
		transcript: cliArgs.Transcript,
		logs:       cliArgs.Logs,
		profile:    profiles.ForCategory(string(category)),
		store:      store,
		scenario: scenario.Scenario{
			ID:       cliArgs.Scenario,
			Title:    cliArgs.Scenario,
			Category: category,
		},
	}

	jobs := make([]scoreJob, 0, len(cliArgs.Files))
	for _, path := range cliArgs.Files {
		path := path
		jobs = append(jobs, scoreJob{
			name: path,
			run:  func() (*scoreResult, error) { return scorer.score(path) },
		})
	}
	return jobs
}

// rescoreJobs builds one job per stored session that recorded its source
// recording, re-scoring it in place with the current profile.
func rescoreJobs(cliArgs *CLI, profiles *profile.Set, store *session.Store) ([]scoreJob, error) {
	records, err := store.History(0)
	if err != nil {
		return nil, err
	}

	var jobs []scoreJob
	for i := range records {
		r := records[i]
		if r.Source == "" {
			continue
		}
		scorer := &fileScorer{
			transcript: r.TranscriptPath,
			logs:       cliArgs.Logs,
			profile:    profiles.ForCategory(string(r.Category)),
			store:      store,
			scenario: scenario.Scenario{
				ID:       r.ScenarioID,
				Title:    r.ScenarioID,
				Category: r.Category,
			},
		}
		jobs = append(jobs, scoreJob{
			name: r.Source,
			run:  func() (*scoreResult, error) { return scorer.rescore(&r) },
		})
	}
	return jobs, nil
}

// runPlain runs each job sequentially, printing results directly.
func runPlain(jobs []scoreJob) {
	failed := 0
	for _, job := range jobs {
		result, err := job.run()
		if err != nil {
			cli.PrintError(fmt.Sprintf("%s: %v", filepath.Base(job.name), err))
			failed++
			continue
		}
		printPlainResult(job.name, result)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printPlainResult(path string, r *scoreResult) {
	fmt.Printf("%s\n", cli.ValueStyle.Render(filepath.Base(path)))
	s := r.Record.Scores
	fmt.Printf("  %s %d  %s %d  %s %d  %s %d  %s %d (%s)\n",
		cli.KeyStyle.Render("Clarity"), s.Clarity,
		cli.KeyStyle.Render("Pacing"), s.Pacing,
		cli.KeyStyle.Render("Tone"), s.Tone,
		cli.KeyStyle.Render("Confidence"), s.Confidence,
		cli.KeyStyle.Render("Overall"), s.Overall(), s.Tier())
	if r.Delta != nil {
		fmt.Printf("  %s clarity %s, pacing %s, tone %s, confidence %s\n",
			cli.KeyStyle.Render("Change:"),
			scoring.FormatDelta(r.Delta.Clarity),
			scoring.FormatDelta(r.Delta.Pacing),
			scoring.FormatDelta(r.Delta.Tone),
			scoring.FormatDelta(r.Delta.Confidence))
	}
	for _, note := range r.Record.Notes {
		fmt.Printf("  [%s] %s: %s\n", note.Priority, note.Title, note.Body)
	}
	fmt.Printf("  %s %s: %s\n", cli.KeyStyle.Render("Next:"), r.Record.Focus.Goal, r.Record.Focus.Reason)
	if r.ReportPath != "" {
		fmt.Printf("  %s %s\n", cli.KeyStyle.Render("Report:"), r.ReportPath)
	}
	fmt.Println()
}

// runInteractive drives the Bubbletea UI, running jobs in the background
// across the given number of workers.
func runInteractive(jobs []scoreJob, workers int) {
	names := make([]string, len(jobs))
	for i, job := range jobs {
		names[i] = job.name
	}

	model := ui.NewModel(names)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, job := range jobs {
			i, job := i, job
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				p.Send(ui.FileStartMsg{
					FileIndex: i,
					FileName:  job.name,
				})

				result, err := job.run()
				if err != nil {
					p.Send(ui.FileCompleteMsg{
						FileIndex: i,
						Error:     err,
					})
					return
				}

				p.Send(ui.FileCompleteMsg{
					FileIndex:  i,
					Scores:     result.Record.Scores,
					Delta:      result.Delta,
					ReportPath: result.ReportPath,
				})
			}()
		}
		wg.Wait()
		p.Send(ui.AllCompleteMsg{})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}

// fileScorer carries everything needed to score one recording end to end.
type fileScorer struct {
	transcript string
	logs       bool
	profile    profile.Profile
	store      *session.Store
	scenario   scenario.Scenario
}

// scoreResult is the outcome of scoring a single recording.
type scoreResult struct {
	Record     session.Record
	Delta      *scoring.ScoreDelta
	ReportPath string
}

// analyze runs the acoustic and transcript analysis shared by both paths.
func (fs *fileScorer) analyze(path string) (scoring.FeedbackScores, metrics.AnalyzedMetrics, *scoring.TranscriptAnalyses, error) {
	clip, err := audio.LoadWAV(path)
	if err != nil {
		return scoring.FeedbackScores{}, metrics.AnalyzedMetrics{}, nil, err
	}
	telemetry := audio.Windows(clip)

	var analyses *scoring.TranscriptAnalyses
	if fs.transcript != "" {
		result, err := transcript.LoadResult(fs.transcript)
		if err != nil {
			return scoring.FeedbackScores{}, metrics.AnalyzedMetrics{}, nil, fmt.Errorf("loading transcript: %w", err)
		}
		analyses = &scoring.TranscriptAnalyses{
			Clarity:    transcript.AnalyzeClarity(result),
			Pacing:     transcript.AnalyzePacing(result, telemetry.Duration, fs.profile),
			Confidence: transcript.AnalyzeConfidence(result),
			Tone:       transcript.AnalyzeTone(result),
		}
	}

	engine := scoring.NewEngine(fs.profile)
	scores, analyzed := engine.GenerateScores(telemetry, fs.scenario, analyses)
	return scores, analyzed, analyses, nil
}

// score runs the full pipeline for one file: decode, analyze, score, coach,
// diff against history, persist, and optionally write a report.
func (fs *fileScorer) score(path string) (*scoreResult, error) {
	scores, analyzed, analyses, err := fs.analyze(path)
	if err != nil {
		return nil, err
	}

	notes := coach.GenerateCoachNotes(analyzed, scores, fs.scenario)
	focus := coach.GenerateTryAgainFocus(scores, fs.scenario)

	previous, err := fs.store.LatestForScenario(fs.scenario.ID)
	if err != nil {
		return nil, err
	}
	var delta *scoring.ScoreDelta
	var previousScores *scoring.FeedbackScores
	if previous != nil {
		previousScores = &previous.Scores
		delta = scores.Delta(previousScores)
	}

	record := session.Record{
		ScenarioID:     fs.scenario.ID,
		Category:       fs.scenario.Category,
		RecordedAt:     time.Now(),
		Source:         path,
		TranscriptPath: fs.transcript,
		Metrics:        analyzed,
		Scores:         scores,
		Notes:          notes,
		Focus:          focus,
	}
	if err := fs.store.Save(&record); err != nil {
		return nil, err
	}

	result := &scoreResult{
		Record: record,
		Delta:  delta,
	}

	if fs.logs {
		reportPath, err := fs.writeReport(path, &record, previousScores, analyses != nil)
		if err != nil {
			return nil, err
		}
		result.ReportPath = reportPath
	}

	return result, nil
}

// rescore re-runs the pipeline over a stored record's source recording,
// replacing its scores, notes, and focus in place. The record keeps its ID and
// timestamp, so history ordering and progression queries are unaffected.
func (fs *fileScorer) rescore(r *session.Record) (*scoreResult, error) {
	scores, analyzed, analyses, err := fs.analyze(r.Source)
	if err != nil {
		return nil, err
	}

	r.Metrics = analyzed
	r.Scores = scores
	r.Notes = coach.GenerateCoachNotes(analyzed, scores, fs.scenario)
	r.Focus = coach.GenerateTryAgainFocus(scores, fs.scenario)

	if err := fs.store.Save(r); err != nil {
		return nil, err
	}

	result := &scoreResult{Record: *r}
	if fs.logs {
		reportPath, err := fs.writeReport(r.Source, r, nil, analyses != nil)
		if err != nil {
			return nil, err
		}
		result.ReportPath = reportPath
	}
	return result, nil
}

func (fs *fileScorer) writeReport(path string, r *session.Record, previous *scoring.FeedbackScores, usedTranscript bool) (string, error) {
	shortRecording := r.Metrics.Duration < fs.profile.Audio.MinimumDurationMinutes*60

	reportPath, err := logging.WriteReport(logging.ReportData{
		InputPath:      path,
		ScenarioTitle:  fs.scenario.Title,
		Category:       string(fs.scenario.Category),
		RecordedAt:     r.RecordedAt,
		Analyzed:       r.Metrics,
		Scores:         r.Scores,
		Previous:       previous,
		Notes:          r.Notes,
		Focus:          r.Focus,
		UsedTranscript: usedTranscript,
		ShortRecording: shortRecording,
	})
	if err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return reportPath, nil
}
