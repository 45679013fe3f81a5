// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/black-desk/fsevwatch/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

// Registry holds the watched paths in canonical form together with
// their recursive mode. It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	paths map[string]types.RecursiveMode
}

func New() *Registry {
	return &Registry{paths: map[string]types.RecursiveMode{}}
}

// Add registers path. The path must exist. Adding a path that is
// already registered replaces its mode.
func (r *Registry) Add(path string, mode types.RecursiveMode) (canonical string, err error) {
	defer Wrap(&err, "add path %s to registry", path)

	canonical, err = Canonicalize(path)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths[canonical] = mode
	return
}

// Lookup returns the canonical form under which path is registered.
func (r *Registry) Lookup(path string) (canonical string, mode types.RecursiveMode, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lookup(path)
}

func (r *Registry) lookup(path string) (canonical string, mode types.RecursiveMode, ok bool) {
	var err error
	canonical, err = Canonicalize(path)
	if err == nil {
		mode, ok = r.paths[canonical]
		if ok {
			return
		}
	}

	// The path may be gone already.
	canonical, err = resolveMissing(path)
	if err != nil {
		return "", 0, false
	}

	mode, ok = r.paths[canonical]
	return
}

// resolveMissing resolves symlinks in the nearest existing ancestor of
// path and appends the missing tail to it.
func resolveMissing(path string) (ret string, err error) {
	var abs string
	abs, err = filepath.Abs(path)
	if err != nil {
		return
	}

	dir, tail := abs, ""
	for {
		ret, err = filepath.EvalSymlinks(dir)
		if err == nil {
			ret = filepath.Join(ret, tail)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}

		tail = filepath.Join(filepath.Base(dir), tail)
		dir = parent
	}
}

// Set restores a previous registration without touching the file
// system. It is used to roll back a failed change.
func (r *Registry) Set(canonical string, mode types.RecursiveMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths[canonical] = mode
}

// Delete drops a canonical path without touching the file system.
func (r *Registry) Delete(canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.paths, canonical)
}

// Remove unregisters path.
func (r *Registry) Remove(path string) (canonical string, mode types.RecursiveMode, err error) {
	defer Wrap(&err, "remove path %s from registry", path)

	r.mu.Lock()
	defer r.mu.Unlock()

	var ok bool
	canonical, mode, ok = r.lookup(path)
	if !ok {
		err = &types.Error{Kind: types.ErrorKindWatchNotFound, Paths: []string{path}}
		return
	}

	delete(r.paths, canonical)
	return
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.paths)
}

// Snapshot returns a copy of the registered paths.
func (r *Registry) Snapshot() map[string]types.RecursiveMode {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.paths)
}

// Paths returns the registered canonical paths in lexical order.
func (r *Registry) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Sorted(maps.Keys(r.paths))
}

// Canonicalize returns the absolute, symlink free form of an existing
// path. Any failure is reported as a PathNotFound error.
func Canonicalize(path string) (ret string, err error) {
	var abs string
	abs, err = filepath.Abs(path)
	if err != nil {
		err = types.NewError(types.ErrorKindPathNotFound, err, path)
		return
	}

	_, err = os.Stat(abs)
	if err != nil {
		err = types.NewError(types.ErrorKindPathNotFound, err, path)
		return
	}

	ret, err = filepath.EvalSymlinks(abs)
	if err != nil {
		err = types.NewError(types.ErrorKindPathNotFound, err, path)
		return
	}

	return
}
