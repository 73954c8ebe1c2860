// Package links procedurally generates golf holes: the playing surfaces of
// a hole as closed boundary curves, plus a noise-based height field, and
// answers the geometric queries a physics or rendering layer needs.
//
// # Generation
//
// [Generate] and [GenerateParams] build a [Course] from a seed. Everything
// random is drawn from a single [Stream] in a fixed order, so the same
// parameters always produce the same course.
//
// A hole is built in stages:
//
//   - The [Centerline] interpolates a few control points with a monotone
//     piecewise cubic (see [Monotone]). A dogleg is a Gaussian bump in the
//     control points' lateral offsets. The ends are pinned at the tee and the
//     hole.
//   - Two [WidthProfile] values, one per side, give the fairway half-width as
//     a clamped B-spline (see [BSpline]) over randomized coefficients.
//   - [BuildRegion] offsets the centerline by the width profiles, joins the
//     two edges into a loop and smooths it with a periodic cubic spline (see
//     [FitPeriodic]). This yields the fairway and, with a margin, the rough.
//   - [NewBlob] perturbs an ellipse into an organic closed shape. Greens and
//     free-standing bunkers are blobs.
//   - [BuildBand] grows a bunker outwards from one sector of a parent shape
//     along the parent's outward normals.
//   - [NewHeightmap] samples Perlin or OpenSimplex noise on a grid.
//
// # Coordinates
//
// x runs from the tee (x = 0) to the hole (x = length). The second
// coordinate, called y in geometry types and z in grid queries, runs across
// the hole. The centerline's offsets are measured from [Course.Baseline],
// which sits in the middle of the heightmap, so grid cell (x, z) and the
// point Pt(x, z) describe the same place.
//
// Feature boundaries are stored relative to an anchor. A feature's anchor is
// derived from its [Placement]: a fixed point, a point on the centerline, or
// another feature's anchor. [Course.Absolute] resolves it.
//
// # Polygons and winding
//
// A [Polygon] is a closed ring of points whose last point repeats the first.
// Containment uses the nonzero winding rule, see [Polygon.Winding] and
// [Course.InPolygon]. [Course.WithinBand] is a cheaper, approximate fairway
// test.
//
// # Errors
//
// Failures wrap one of [ErrInvalidParameter], [ErrDegenerateSpline],
// [ErrDegenerateGeometry] or [ErrOutOfDomain]; test for them with
// [errors.Is]. Height and slope queries outside the grid are not errors and
// read as 0.
package links
