package catalog

import "github.com/nao1215/improvements/internal/model"

// builtin lists the categories in display order. It is never handed out
// directly; Default copies it into a fresh Catalog on every call.
var builtin = []model.Category{
	{
		Name: "Architecture & Code Quality",
		Items: []string{
			"Add proper error handling and try-catch blocks",
			"Implement logging system for debugging",
			"Add JSDoc comments for all functions",
			"Separate concerns better (UI, Logic, Generators)",
			"Add TypeScript-like type checking via JSDoc",
		},
	},
	{
		Name: "New Features",
		Items: []string{
			"Add Model Generator for custom entity models (JSON)",
			"Add Texture Config Generator for resource packs",
			"Add Recipe Generator for crafting/smelting recipes",
			"Add Event Listener Generator for Fabric events",
			"Add Particle Effect Generator",
			"Add Sound Manager Generator",
			"Add Data Generator for loot tables, advancements",
			"Add mod.json template generator",
			"Add gradle.properties template with version variables",
			"Advanced configuration profiles (save/load configs)",
		},
	},
	{
		Name: "UI/UX Improvements",
		Items: []string{
			"Add dark/light theme toggle",
			"Add progress indicator for generation",
			"Add code syntax highlighting in preview",
			"Add search/filter for generators",
			"Add drag-drop file uploading",
			"Add live code preview pane",
			"Add generator dependency checking (warn if prerequisites missing)",
			"Add undo/redo functionality",
			"Add keyboard shortcuts",
			"Responsive design improvements",
		},
	},
	{
		Name: "Performance & Optimization",
		Items: []string{
			"Cache generated files to reduce re-generation",
			"Lazy-load generators only when needed",
			"Optimize DOM manipulation with document fragments",
			"Add worker threads for heavy generation",
			"Minimize CSS/JS file sizes",
		},
	},
	{
		Name: "Code Generation Enhancements",
		Items: []string{
			"Add proper imports organization",
			"Add Javadoc comments in generated code",
			"Add @FunctionalInterface annotations where applicable",
			"Improve generated code formatting (4-space indent)",
			"Add modern Java 21 records support option",
			"Add dependency conflict detection",
			"Generate corresponding test templates",
		},
	},
	{
		Name: "Data & Configuration",
		Items: []string{
			"Add version management for Minecraft/Fabric versions",
			"Support for NeoForge in addition to Fabric",
			"Add custom mixin template support",
			"Add dependency management system",
			"Export/import configuration as JSON",
		},
	},
	{
		Name: "Developer Tools",
		Items: []string{
			"Add project structure validator",
			"Add code style formatter",
			"Add batch generation (multiple mods at once)",
			"Add CLI interface for non-web usage",
			"Add GitHub Actions template generator",
		},
	},
}

// Default returns the built-in improvement catalog.
func Default() *model.Catalog {
	return MustCatalog(builtin...)
}

// MustCatalog is like model.NewCatalog but panics on invalid input.
// It is meant for literal data known at compile time.
func MustCatalog(categories ...model.Category) *model.Catalog {
	c, err := model.NewCatalog(categories...)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return c
}
