// Package geo содержит чистую геометрию на координатах: расстояния,
// интерполяция вдоль маршрута и предикаты геозон.
package geo

import (
	"math"

	"service/internal/entities"
)

// Радиус Земли в километрах.
const earthRadiusKm = 6371.0

// Distance возвращает расстояние большого круга между двумя точками в километрах
// (формула гаверсинусов).
func Distance(a, b entities.Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceToSegment возвращает расстояние в километрах от точки p до ближайшей
// точки отрезка [a, b]. Проекция считается в координатной плоскости, итоговое
// расстояние - по гаверсинусу до найденной точки.
func DistanceToSegment(p, a, b entities.Coordinate) float64 {
	return Distance(p, closestOnSegment(p, a, b))
}

// MinDistanceToPath возвращает минимальное расстояние в километрах от точки до
// ломаной. Для ломаной из одной точки - расстояние до этой точки, для пустой - +Inf.
func MinDistanceToPath(p entities.Coordinate, path []entities.Coordinate) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	if len(path) == 1 {
		return Distance(p, path[0])
	}

	minDistance := math.Inf(1)
	for i := 1; i < len(path); i++ {
		if d := DistanceToSegment(p, path[i-1], path[i]); d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}

// PointInCircle сообщает, лежит ли точка внутри круга радиусом radiusKm.
// Граница считается принадлежащей кругу.
func PointInCircle(p, center entities.Coordinate, radiusKm float64) bool {
	return Distance(p, center) <= radiusKm
}

// PointNearPath сообщает, лежит ли точка в коридоре шириной widthKm вокруг ломаной.
func PointNearPath(p entities.Coordinate, path []entities.Coordinate, widthKm float64) bool {
	return MinDistanceToPath(p, path) <= widthKm
}

// Interpolate возвращает точку на отрезке [a, b] на доле ratio пути от a.
// ratio обрезается в [0, 1].
func Interpolate(a, b entities.Coordinate, ratio float64) entities.Coordinate {
	ratio = clamp(ratio, 0, 1)
	return entities.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*ratio,
		Lng: a.Lng + (b.Lng-a.Lng)*ratio,
	}
}

// PathDistance возвращает суммарную длину ломаной в километрах.
func PathDistance(path []entities.Coordinate) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// DeriveCheckpoints размечает вдоль ломаной n равноудалённых (по пройденному
// расстоянию) точек: маршрут делится на n+1 равных отрезков, точки ставятся на
// границах. Для вырожденного маршрута (меньше двух точек) возвращается пустой срез.
func DeriveCheckpoints(path []entities.Coordinate, n int) []entities.Coordinate {
	if len(path) < 2 || n <= 0 {
		return nil
	}

	total := PathDistance(path)
	interval := total / float64(n+1)

	points := make([]entities.Coordinate, 0, n)
	var covered float64
	segmentStart := 0

	for i := 1; i <= n; i++ {
		target := interval * float64(i)

		for segmentStart < len(path)-1 {
			segmentLen := Distance(path[segmentStart], path[segmentStart+1])
			if covered+segmentLen >= target || segmentStart == len(path)-2 {
				var ratio float64
				if segmentLen > 0 {
					ratio = (target - covered) / segmentLen
				}
				points = append(points, Interpolate(path[segmentStart], path[segmentStart+1], ratio))
				break
			}
			covered += segmentLen
			segmentStart++
		}
	}

	return points
}

func closestOnSegment(p, a, b entities.Coordinate) entities.Coordinate {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng

	lengthSquared := dLat*dLat + dLng*dLng
	if lengthSquared == 0 {
		return a
	}

	t := ((p.Lat-a.Lat)*dLat + (p.Lng-a.Lng)*dLng) / lengthSquared
	t = clamp(t, 0, 1)

	return entities.Coordinate{
		Lat: a.Lat + t*dLat,
		Lng: a.Lng + t*dLng,
	}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
