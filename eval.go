// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

// Eval computes the boolean value of e in env.
//
// Both operands of And and Or are evaluated, left operand first: there is
// no short-circuit, so evaluation order is deterministic. A Call evaluates
// its arguments in the caller's environment, then binds the parameters in
// a fresh scope layered directly on the global root, so a function body
// sees only its own parameters and the global signals, never the caller's
// locals. Bodies may themselves contain calls; every application
// re-evaluates the body.
//
func Eval(e Expr, env *Env) (bool, error) {
	switch e := e.(type) {
	case Signal:
		return env.Get(string(e))
	case And:
		a, err := Eval(e.A, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.B, env)
		if err != nil {
			return false, err
		}
		return a && b, nil
	case Or:
		a, err := Eval(e.A, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.B, env)
		if err != nil {
			return false, err
		}
		return a || b, nil
	case Not:
		v, err := Eval(e.X, env)
		if err != nil {
			return false, err
		}
		return !v, nil
	case Call:
		return evalCall(e, env)
	}
	panic("unknown expression type")
}

func evalCall(e Call, env *Env) (bool, error) {
	def := env.Def(e.Name)
	if def == nil {
		return false, &UndefinedFuncError{Name: e.Name}
	}
	if len(e.Args) != len(def.Params) {
		return false, &ArityError{Name: e.Name, Want: len(def.Params), Got: len(e.Args)}
	}
	// arguments are evaluated in the caller's environment, left to right,
	// before any parameter is bound
	args := make([]bool, len(e.Args))
	for i, a := range e.Args {
		v, err := Eval(a, env)
		if err != nil {
			return false, err
		}
		args[i] = v
	}
	call := env.root().NewScope()
	for i, p := range def.Params {
		call.bind(p, args[i])
	}
	return Eval(def.Body, call)
}

// Apply evaluates the update's expression in env and writes the result to
// the target signal.
//
func (u Update) Apply(env *Env) error {
	v, err := Eval(u.Expr, env)
	if err != nil {
		return err
	}
	env.Set(u.Target, v)
	return nil
}
