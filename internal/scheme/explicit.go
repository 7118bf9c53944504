package scheme

import (
	"github.com/san-kum/pdebench/internal/grid"
	"github.com/san-kum/pdebench/internal/pde"
)

// ftcs is the forward-time centered-space explicit heat scheme:
// u'[i] = u[i] + r*(u[i+1] - 2u[i] + u[i-1]), r = alpha*dt/dx².
type ftcs struct {
	alpha float64
	bc    pde.Boundary
}

func (f *ftcs) Name() string { return pde.FTCS.String() }

func (f *ftcs) Step(g *grid.Grid, dt float64) error {
	old, next := g.Field(), g.Scratch()
	n := g.N
	r := f.alpha * dt / (g.Dx * g.Dx)

	for i := 1; i < n-1; i++ {
		next[i] = old[i] + r*(old[i+1]-2*old[i]+old[i-1])
	}
	if f.bc.Kind == pde.Periodic {
		next[0] = old[0] + r*(old[1]-2*old[0]+old[n-1])
		next[n-1] = old[n-1] + r*(old[0]-2*old[n-1]+old[n-2])
	} else {
		// Edge values are pinned by the boundary application that follows.
		next[0] = old[0]
		next[n-1] = old[n-1]
	}
	g.Swap()
	return nil
}

// upwind biases the spatial difference toward the direction information
// flows from. The bias follows sign(c) and must not be swapped: the
// downwind variant is unconditionally unstable.
type upwind struct {
	speed float64
	bc    pde.Boundary
}

func (u *upwind) Name() string { return pde.Upwind.String() }

func (u *upwind) Step(g *grid.Grid, dt float64) error {
	old, next := g.Field(), g.Scratch()
	n := g.N
	nu := u.speed * dt / g.Dx
	periodic := u.bc.Kind == pde.Periodic

	if u.speed > 0 {
		for i := 1; i < n; i++ {
			next[i] = old[i] - nu*(old[i]-old[i-1])
		}
		if periodic {
			next[0] = old[0] - nu*(old[0]-old[n-1])
		} else {
			next[0] = old[0]
		}
	} else {
		for i := 0; i < n-1; i++ {
			next[i] = old[i] - nu*(old[i+1]-old[i])
		}
		if periodic {
			next[n-1] = old[n-1] - nu*(old[0]-old[n-1])
		} else {
			next[n-1] = old[n-1]
		}
	}
	g.Swap()
	return nil
}

// laxFriedrichs trades accuracy for robustness through implicit numerical
// diffusion: u'[i] = (u[i+1]+u[i-1])/2 - nu/2*(u[i+1]-u[i-1]).
type laxFriedrichs struct {
	speed float64
	bc    pde.Boundary
}

func (l *laxFriedrichs) Name() string { return pde.LaxFriedrichs.String() }

func (l *laxFriedrichs) Step(g *grid.Grid, dt float64) error {
	old, next := g.Field(), g.Scratch()
	n := g.N
	nu := l.speed * dt / g.Dx

	for i := 1; i < n-1; i++ {
		next[i] = 0.5*(old[i+1]+old[i-1]) - 0.5*nu*(old[i+1]-old[i-1])
	}
	if l.bc.Kind == pde.Periodic {
		next[0] = 0.5*(old[1]+old[n-1]) - 0.5*nu*(old[1]-old[n-1])
		next[n-1] = 0.5*(old[0]+old[n-2]) - 0.5*nu*(old[0]-old[n-2])
	} else {
		next[0] = old[0]
		next[n-1] = old[n-1]
	}
	g.Swap()
	return nil
}
