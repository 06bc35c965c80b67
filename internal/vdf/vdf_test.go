package vdf

import "testing"

func TestAppIDs_Basic(t *testing.T) {
	manifest := "\"apps\"\n{\n\"440\"\n\"570\"\n}"

	apps := AppIDs([]byte(manifest))

	if len(apps) != 2 {
		t.Fatalf("len(apps) = %d, want 2", len(apps))
	}
	for _, id := range []uint32{440, 570} {
		if _, ok := apps[id]; !ok {
			t.Errorf("apps missing %d", id)
		}
	}
}

func TestAppIDs_RealWorldShape(t *testing.T) {
	manifest := `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.local/share/Steam"
		"label"		""
		"apps"
		{
			"228980"		"454244970"
			"1493710"		"21134776642"
		}
	}
}`

	apps := AppIDs([]byte(manifest))

	if len(apps) != 2 {
		t.Fatalf("len(apps) = %d, want 2", len(apps))
	}
	if _, ok := apps[228980]; !ok {
		t.Error("apps missing 228980")
	}
	if _, ok := apps[1493710]; !ok {
		t.Error("apps missing 1493710")
	}
}

func TestAppIDs_NoAppsSection(t *testing.T) {
	manifest := `"libraryfolders"
{
	"0"
	{
		"path"		"/home/user/.local/share/Steam"
	}
}`

	apps := AppIDs([]byte(manifest))

	if len(apps) != 0 {
		t.Errorf("len(apps) = %d, want 0", len(apps))
	}
}

func TestAppIDs_IgnoresMalformedLines(t *testing.T) {
	manifest := "\"apps\"\n{\nnot-a-key\n\"abc\"\n\"-5\"\n\"440\"\n}"

	apps := AppIDs([]byte(manifest))

	if len(apps) != 1 {
		t.Fatalf("len(apps) = %d, want 1", len(apps))
	}
	if _, ok := apps[440]; !ok {
		t.Error("apps missing 440")
	}
}

func TestAppIDs_KeysOutsideSectionIgnored(t *testing.T) {
	manifest := "\"123\"\n\"apps\"\n{\n\"440\"\n}\n\"456\"\n"

	apps := AppIDs([]byte(manifest))

	if len(apps) != 1 {
		t.Fatalf("len(apps) = %d, want 1", len(apps))
	}
	if _, ok := apps[440]; !ok {
		t.Error("apps missing 440")
	}
}

func TestAppIDs_Empty(t *testing.T) {
	if apps := AppIDs(nil); len(apps) != 0 {
		t.Errorf("len(apps) = %d, want 0", len(apps))
	}
}

func TestLibraryPaths_SingleEntry(t *testing.T) {
	manifest := `"libraryfolders"
{
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
		"label"		""
	}
}`

	paths := LibraryPaths([]byte(manifest))

	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	if paths[0] != "/mnt/games/SteamLibrary" {
		t.Errorf("paths[0] = %q, want %q", paths[0], "/mnt/games/SteamLibrary")
	}
}

func TestLibraryPaths_ManifestOrder(t *testing.T) {
	manifest := "\"path\"\t\"/b\"\n}\n\"path\"\t\"/a\"\n}\n"

	paths := LibraryPaths([]byte(manifest))

	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if paths[0] != "/b" || paths[1] != "/a" {
		t.Errorf("paths = %v, want [/b /a]", paths)
	}
}

func TestLibraryPaths_NoPathKeys(t *testing.T) {
	manifest := "\"apps\"\n{\n\"440\"\n}\n"

	if paths := LibraryPaths([]byte(manifest)); len(paths) != 0 {
		t.Errorf("len(paths) = %d, want 0", len(paths))
	}
}

func TestLibraryPaths_PathWithoutClosingBrace(t *testing.T) {
	manifest := "\"path\"\t\"/pending\"\n"

	if paths := LibraryPaths([]byte(manifest)); len(paths) != 0 {
		t.Errorf("len(paths) = %d, want 0 (no record boundary seen)", len(paths))
	}
}
