package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"sphere-grid", "Sphere Grid"},
		{"utah_teapot", "Utah Teapot"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.obj",
			content: `# Scene: Tetrahedron
# Description: Four triangles
# Group: Meshes

v 0 0 0`,
			expected: SceneInfo{
				ID:          "file:complete_metadata.obj",
				Name:        "Tetrahedron",
				Description: "Four triangles",
				Group:       "Meshes",
				Type:        "file",
			},
		},
		{
			name:    "no_metadata.obj",
			content: "v 0 0 0\n# Scene: Too Late",
			expected: SceneInfo{
				ID:    "file:no_metadata.obj",
				Name:  "No Metadata", // From filename
				Group: fileGroup,
				Type:  "file",
			},
		},
		{
			name:    "described.json",
			content: `{"name": "Spheres", "description": "Two spheres", "shapes": []}`,
			expected: SceneInfo{
				ID:          "file:described.json",
				Name:        "Spheres",
				Description: "Two spheres",
				Group:       fileGroup,
				Type:        "file",
			},
		},
		{
			name:    "plain-json.json",
			content: `{"shapes": []}`,
			expected: SceneInfo{
				ID:    "file:plain-json.json",
				Name:  "Plain Json",
				Group: fileGroup,
				Type:  "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.obj":     "# Scene: Beta\nv 0 0 0\n",
		"a.json":    `{"name": "Alpha", "shapes": []}`,
		"notes.txt": "ignored",
		"bad.json":  "{",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := listSceneFiles(dir)
	if err != nil {
		t.Fatalf("listSceneFiles() error: %v", err)
	}

	// bad.json is skipped with a warning, notes.txt is not a scene file
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected scenes sorted Alpha, Beta; got %s, %s", scenes[0].Name, scenes[1].Name)
	}
}

func TestListAllScenes(t *testing.T) {
	response, err := ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	if len(response.Groups) == 0 || response.Groups[0].Name != builtInGroup {
		t.Fatalf("Expected %s group first, got %+v", builtInGroup, response.Groups)
	}

	sceneIDs := make(map[string]bool)
	for _, scene := range response.Groups[0].Scenes {
		sceneIDs[scene.ID] = true
	}
	for _, expectedID := range []string{"default", "sphere-grid"} {
		if !sceneIDs[expectedID] {
			t.Errorf("Missing expected built-in scene: %s", expectedID)
		}
	}
}

func TestFindScene(t *testing.T) {
	for _, id := range []string{"default", "sphere-grid"} {
		info, err := FindScene(id)
		if err != nil {
			t.Fatalf("FindScene(%q) error: %v", id, err)
		}
		s, err := info.Create(nil)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if s.PrimitiveCount() == 0 || s.Camera == nil {
			t.Errorf("Scene %q has no shapes or camera", id)
		}
	}

	if _, err := FindScene("no-such-scene"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
