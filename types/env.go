package types

import (
	"github.com/benbjohnson/immutable"
)

// Env binds names to values
type Env struct {
	Bindings *immutable.Map
}

// Set sets the value of a name
func (env *Env) Set(name string, value Value) {
	env.Bindings = env.Bindings.Set(name, value)
}

// Get gets the value of a name
func (env *Env) Get(name string) (Value, error) {
	value, found := env.Bindings.Get(name)
	if !found {
		return nil, Undefined{Name: name}
	}
	return value, nil
}

// Names lists the bound names
func (env *Env) Names() []string {
	names := make([]string, 0, env.Bindings.Len())
	itr := env.Bindings.Iterator()
	for !itr.Done() {
		k, _ := itr.Next()
		names = append(names, k.(string))
	}
	return names
}

// BuildEnv builds a new env
func BuildEnv() *Env {
	return &Env{Bindings: immutable.NewMap(nil)}
}
