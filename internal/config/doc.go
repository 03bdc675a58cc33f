// Package config loads glyphedit settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, usually glyphedit.toml
//  3. GLYPHEDIT_* environment variables
//
// The merged result is decoded into a Config, validated, and turned into
// engine options with EngineOptions.
//
// # File format
//
//	[editor]
//	tabSize = 4
//	indentWithTab = false
//	language = "Lua"
//	palette = "dark"
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[languages]
//	paths = ["~/.config/glyphedit/langs/mylang.yaml"]
//
// # Environment
//
// GLYPHEDIT_SECTION_SETTING_NAME maps to section.settingName, so
// GLYPHEDIT_EDITOR_TAB_SIZE sets editor.tabSize. A few short forms are
// recognised as well (GLYPHEDIT_TAB_SIZE, GLYPHEDIT_LANGUAGE,
// GLYPHEDIT_LOG_LEVEL). Variables naming an unknown section are ignored.
package config
