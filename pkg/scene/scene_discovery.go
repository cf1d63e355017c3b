package scene

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/loaders"
)

const (
	builtInGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		Name:        "Default Scene",
		Description: "One of every primitive in front of a back wall",
		Group:       builtInGroup,
		Type:        "builtin",
	},
	{
		ID:          "sphere-grid",
		Name:        "Sphere Grid",
		Description: "10x10 grid of spheres",
		Group:       builtInGroup,
		Type:        "builtin",
	},
}

// findScenesDir returns the first scenes directory found from the working
// directory, or "" if there is none
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListFileScenes scans the scenes directory and returns discovered OBJ and
// JSON scenes sorted by name
func ListFileScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	return listSceneFiles(scenesDir)
}

func listSceneFiles(dir string) ([]SceneInfo, error) {
	var files []string
	for _, pattern := range []string{"*.obj", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata extracts name, description and group from a scene file.
// OBJ files carry them as leading "# Scene:", "# Description:" and
// "# Group:" comments; JSON files as top-level "name", "description" and
// "group" fields. Missing values fall back to the file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:       "file:" + filename,
		Name:     titleCase(nameWithoutExt),
		Group:    fileGroup,
		Type:     "file",
		FilePath: filePath,
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".obj":
		return parseOBJMetadata(filePath, sceneInfo)
	case ".json":
		return parseJSONMetadata(filePath, sceneInfo)
	default:
		return sceneInfo, fmt.Errorf("%s: %w", filePath, loaders.ErrUnsupportedFormat)
	}
}

func parseOBJMetadata(filePath string, sceneInfo SceneInfo) (SceneInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return sceneInfo, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch {
		case strings.HasPrefix(content, "Scene:"):
			sceneInfo.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
		case strings.HasPrefix(content, "Description:"):
			sceneInfo.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		case strings.HasPrefix(content, "Group:"):
			sceneInfo.Group = strings.TrimSpace(strings.TrimPrefix(content, "Group:"))
		}
	}

	return sceneInfo, scanner.Err()
}

func parseJSONMetadata(filePath string, sceneInfo SceneInfo) (SceneInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var metadata struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return sceneInfo, err
	}

	if metadata.Name != "" {
		sceneInfo.Name = metadata.Name
	}
	if metadata.Group != "" {
		sceneInfo.Group = metadata.Group
	}
	sceneInfo.Description = metadata.Description
	return sceneInfo, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes()
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(append([]SceneInfo{}, builtInScenes...), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtInGroup,
		Scenes: groupMap[builtInGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// FindScene looks up a scene by ID among the built-in and discovered scenes
func FindScene(id string) (SceneInfo, error) {
	for _, info := range builtInScenes {
		if info.ID == id {
			return info, nil
		}
	}

	fileScenes, err := ListFileScenes()
	if err != nil {
		return SceneInfo{}, err
	}
	for _, info := range fileScenes {
		if info.ID == id {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("unknown scene: %s", id)
}

// Create builds the scene described by info
func (info SceneInfo) Create(logger core.Logger) (*Scene, error) {
	switch info.Type {
	case "builtin":
		switch info.ID {
		case "default":
			return NewDefaultScene(), nil
		case "sphere-grid":
			return NewSphereGridScene(), nil
		}
		return nil, fmt.Errorf("unknown built-in scene: %s", info.ID)
	case "file":
		if err := loaders.ValidateScenePath(info.FilePath); err != nil {
			return nil, err
		}
		return NewFileScene(info.FilePath, logger)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", info.Type)
	}
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
