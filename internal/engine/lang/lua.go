package lang

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Time limits for Lua code. A tokenize call that runs out of time counts as
// no match and switches the hook off for good.
var (
	luaLoadTimeout     = time.Second
	luaTokenizeTimeout = 50 * time.Millisecond
)

// LoadLua runs a Lua script that returns a language definition table:
//
//	return {
//	  name = "INI",
//	  case_sensitive = false,
//	  keywords = { "true", "false" },
//	  identifiers = { include = "Pulls in another file" },
//	  patterns = {
//	    { "[;#].*", "comment" },
//	    { "\\[[^\\]]*\\]", "keyword" },
//	  },
//	  line_comment = ";",
//	  pairs = { "[]" },
//	  tokenize = function(text)
//	    local s, e = string.find(text, "^%$%w+")
//	    if s then return s, e, "preproc_identifier" end
//	  end,
//	}
//
// Table keys mirror the YAML and TOML formats. The optional tokenize
// function receives the rest of the line and returns 1-based inclusive
// bounds and a class name, or nothing. The script runs with only the base,
// table, string and math libraries. name identifies the chunk in errors.
func LoadLua(name, script string) (*Definition, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, global := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(global, lua.LNil)
	}

	fn, err := L.LoadString(script)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: lua %s: %w", ErrInvalidDefinition, name, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), luaLoadTimeout)
	L.SetContext(ctx)
	L.Push(fn)
	err = L.PCall(0, 1, nil)
	L.RemoveContext()
	cancel()
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: lua %s: %w", ErrInvalidDefinition, name, err)
	}
	tbl, ok := L.Get(-1).(*lua.LTable)
	L.Pop(1)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: lua %s: script must return a table", ErrInvalidDefinition, name)
	}

	fd := fileDefinition{
		Name:             luaString(tbl, "name"),
		Extends:          luaString(tbl, "extends"),
		CommentStart:     luaString(tbl, "comment_start"),
		CommentEnd:       luaString(tbl, "comment_end"),
		LineComment:      luaString(tbl, "line_comment"),
		CommentException: luaString(tbl, "comment_exception"),
		Keywords:         luaStrings(tbl, "keywords"),
		Pairs:            luaStrings(tbl, "pairs"),
	}
	if v, ok := tbl.RawGetString("case_sensitive").(lua.LBool); ok {
		b := bool(v)
		fd.CaseSensitive = &b
	}
	fd.Identifiers = luaStringMap(tbl, "identifiers")
	fd.PreprocIdentifiers = luaStringMap(tbl, "preproc_identifiers")
	if pats, ok := tbl.RawGetString("patterns").(*lua.LTable); ok {
		pats.ForEach(func(_, v lua.LValue) {
			entry, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			fd.Patterns = append(fd.Patterns, filePattern{
				Regex: lua.LVAsString(entry.RawGetInt(1)),
				Class: lua.LVAsString(entry.RawGetInt(2)),
			})
		})
	}

	def, err := fd.build()
	if err != nil {
		L.Close()
		return nil, err
	}

	tokenize, ok := tbl.RawGetString("tokenize").(*lua.LFunction)
	if !ok {
		L.Close()
		return def, nil
	}
	def.Tokenize = luaTokenizer(L, tokenize)
	return def, nil
}

// luaTokenizer adapts a Lua tokenize function. The state stays open for the
// life of the definition and is serialised by a mutex.
func luaTokenizer(L *lua.LState, fn *lua.LFunction) TokenizeFunc {
	var mu sync.Mutex
	disabled := false
	return func(text string) (int, int, PaletteIndex, bool) {
		mu.Lock()
		defer mu.Unlock()
		if disabled {
			return 0, 0, Default, false
		}

		top := L.GetTop()
		defer L.SetTop(top)

		ctx, cancel := context.WithTimeout(context.Background(), luaTokenizeTimeout)
		defer cancel()
		L.SetContext(ctx)
		defer L.RemoveContext()

		err := L.CallByParam(lua.P{Fn: fn, NRet: 3, Protect: true}, lua.LString(text))
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				disabled = true
			}
			return 0, 0, Default, false
		}
		s, ok1 := L.Get(-3).(lua.LNumber)
		e, ok2 := L.Get(-2).(lua.LNumber)
		if !ok1 || !ok2 {
			return 0, 0, Default, false
		}
		class, err := ParsePaletteIndex(lua.LVAsString(L.Get(-1)))
		if err != nil {
			return 0, 0, Default, false
		}
		return int(s) - 1, int(e), class, true
	}
}

func luaString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func luaStrings(tbl *lua.LTable, key string) []string {
	list, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	for i := 1; i <= list.Len(); i++ {
		if s, ok := list.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

func luaStringMap(tbl *lua.LTable, key string) map[string]string {
	m, ok := tbl.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	out := make(map[string]string)
	m.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			out[string(ks)] = lua.LVAsString(v)
		}
	})
	return out
}
