package systems

import (
	"math"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every player by its speed, stopping at solids.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object)
		if player.Mode == animation.ModeTopDown {
			resolveTopDownVerticalCollision(physics, obj.Object)
			return
		}
		resolveObjectVerticalCollision(physics, obj.Object)
	})
}

// resolveObjectHorizontalCollision handles horizontal movement and wall collision
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if wall := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), dx, 0); wall != nil {
		physics.SpeedX = 0
		dx = check.ContactWithObject(wall).X()
	}
	object.X += dx
}

// resolveObjectVerticalCollision handles vertical movement and ground/platform collision
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	// Look one pixel further when falling or resting so standing still keeps finding the floor
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, object, check, dy)
	} else {
		dy = handleDownwardCollision(physics, object, check, dy)
	}
	object.Y += dy
}

// resolveTopDownVerticalCollision treats the Y axis like the X axis: no gravity, no ground.
func resolveTopDownVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}
	if wall := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy); wall != nil {
		physics.SpeedY = 0
		dy = check.ContactWithObject(wall).Y()
	}
	object.Y += dy
}

// nearestSolid returns the first solid hit when moving by (dx, dy), ignoring solids that only
// share a cell with the mover without overlapping it on the other axis.
func nearestSolid(object *resolv.Object, solids []*resolv.Object, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, s := range solids {
		var dist float64
		switch {
		case dx > 0:
			if !overlaps(object.Y, object.H, s.Y, s.H) {
				continue
			}
			dist = s.X - (object.X + object.W)
		case dx < 0:
			if !overlaps(object.Y, object.H, s.Y, s.H) {
				continue
			}
			dist = object.X - (s.X + s.W)
		case dy > 0:
			if !overlaps(object.X, object.W, s.X, s.W) {
				continue
			}
			dist = s.Y - (object.Y + object.H)
		case dy < 0:
			if !overlaps(object.X, object.W, s.X, s.W) {
				continue
			}
			dist = object.Y - (s.Y + s.H)
		}
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best
}

func overlaps(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}

func clampVerticalSpeed(speedY float64) float64 {
	limit := cfg.Physics.VerticalSpeedClamp
	return math.Max(math.Min(speedY, limit), -limit)
}

func handleUpwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	// Platforms are passed through from below
	if ceiling := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy); ceiling != nil {
		physics.SpeedY = 0
		return check.ContactWithObject(ceiling).Y()
	}
	return dy
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if newDy, handled := tryPlatformCollision(physics, object, check); handled {
		return newDy
	}
	if newDy, handled := trySolidCollision(physics, object, check, dy); handled {
		return newDy
	}
	return dy
}

func tryPlatformCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) (float64, bool) {
	platform := nearestSolid(object, check.ObjectsByTags(tags.ResolvPlatform), 0, 1)
	if platform == nil {
		return 0, false
	}

	// Only land when the feet were above the platform's top edge
	if platform == physics.IgnorePlatform ||
		physics.SpeedY < 0 ||
		object.Y+object.H >= platform.Y+cfg.Physics.PlatformDropThreshold {
		return 0, false
	}

	physics.OnGround = platform
	physics.SpeedY = 0
	return check.ContactWithObject(platform).Y(), true
}

func trySolidCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) (float64, bool) {
	solid := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy+1)
	if solid == nil {
		return 0, false
	}

	physics.OnGround = solid
	physics.SpeedY = 0
	physics.IgnorePlatform = nil
	return check.ContactWithObject(solid).Y(), true
}
