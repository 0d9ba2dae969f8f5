// Package topics adds a file-backed help topic system to a Cobra CLI.
// Topic files are scanned from a directory and served through the help
// command alongside regular command help, so documentation can live in
// plain text or markdown files next to the binary.
package topics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager holds the scanned topics and the help plumbing for one
// root command.
type TopicManager struct {
	topicsDir    string
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic is one help topic loaded from disk.
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures topic scanning and rendering.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content for display.
	// Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager with default options.
func New(topicsDir string) *TopicManager {
	return NewWithOptions(topicsDir, Options{})
}

// NewWithOptions creates a TopicManager for the given directory.
func NewWithOptions(topicsDir string, opts Options) *TopicManager {
	tm := &TopicManager{
		topicsDir:  topicsDir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

// scanTopics loads all topic files under the topics directory. A
// missing directory is not an error, the CLI just has no topics.
func (tm *TopicManager) scanTopics() error {
	if _, err := os.Stat(tm.topicsDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(tm.topicsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !slices.Contains(tm.extensions, ext) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: path,
			Content:  string(content),
		}
		return nil
	})
}

// GetTopic looks up a topic by name. Flag spellings resolve too:
// "--dry-run" matches both a "dry-run" topic and an "option-dry-run"
// topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all scanned topic names in no particular order.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	return names
}

func (tm *TopicManager) printTopic(topic *Topic) {
	fmt.Print(tm.renderer.Render(topic.Content, filepath.Ext(topic.FilePath)))
}

func (tm *TopicManager) printTopicList(rootName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Println("No help topics available.")
		return
	}
	sort.Strings(names)

	// Option topics list under their flag spelling.
	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	fmt.Println("Available help topics:")
	if len(general) > 0 {
		fmt.Println("\nGeneral topics:")
		for _, name := range general {
			fmt.Printf("  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Println("\nOption topics:")
		for _, name := range options {
			fmt.Printf("  --%s\n", name)
		}
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", rootName)
}

// Initialize wires the topic help system into rootCmd with default
// options.
func Initialize(rootCmd *cobra.Command, topicsDir string) error {
	return InitializeWithOptions(rootCmd, topicsDir, Options{})
}

// InitializeWithOptions scans topicsDir and replaces rootCmd's help
// command with one that also serves topics. Unknown help arguments
// still fall through to Cobra's own help.
func InitializeWithOptions(rootCmd *cobra.Command, topicsDir string, opts Options) error {
	tm := NewWithOptions(topicsDir, opts)
	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				tm.printTopicList(rootCmd.Name())
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				tm.printTopic(topic)
				return
			}
			tm.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// --help on the root also resolves topics, so "venvup --help
	// activation" and "venvup help activation" behave the same.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := tm.GetTopic(args[0]); ok {
				tm.printTopic(topic)
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return nil
}
