package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Validate validates the Qdrant configuration.
func (cfg QdrantConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// GetDistanceMetric maps a metric name to the Qdrant distance. Unknown names give cosine.
func GetDistanceMetric(metric string) pb.Distance {
	switch metric {
	case DistanceEuclidean:
		return pb.Distance_Euclid
	case DistanceDot:
		return pb.Distance_Dot
	case DistanceManhattan:
		return pb.Distance_Manhattan
	default:
		return pb.Distance_Cosine
	}
}

// MatchKeyword builds a filter requiring payload key to equal value.
func MatchKeyword(key, value string) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_Field{
			Field: &pb.FieldCondition{
				Key:   key,
				Match: &pb.Match{MatchValue: &pb.Match_Keyword{Keyword: value}},
			},
		},
	}
}

// MatchBool builds a filter requiring payload key to equal value.
func MatchBool(key string, value bool) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_Field{
			Field: &pb.FieldCondition{
				Key:   key,
				Match: &pb.Match{MatchValue: &pb.Match_Boolean{Boolean: value}},
			},
		},
	}
}

func uuidPointID(id string) *pb.PointId {
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}
}

func toPointStructs(points []Point) ([]*pb.PointStruct, error) {
	result := make([]*pb.PointStruct, 0, len(points))
	for _, point := range points {
		if point.ID == "" {
			return nil, ErrInvalidPointID
		}
		if len(point.Vector) == 0 {
			return nil, ErrInvalidVector
		}
		payload, err := pb.TryValueMap(point.Payload)
		if err != nil {
			return nil, WrapError(err, "failed to convert payload")
		}
		result = append(result, &pb.PointStruct{
			Id:      uuidPointID(point.ID),
			Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: point.Vector}}},
			Payload: payload,
		})
	}
	return result, nil
}

func searchResultsFromHits(hits []*pb.ScoredPoint) []SearchResult {
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		payload := make(map[string]interface{}, len(hit.GetPayload()))
		for key, value := range hit.GetPayload() {
			payload[key] = valueToInterface(value)
		}
		results = append(results, SearchResult{ID: hit.GetId().GetUuid(), Score: hit.GetScore(), Payload: payload})
	}
	return results
}

func valueToInterface(v *pb.Value) interface{} {
	switch kind := v.GetKind().(type) {
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_ListValue:
		list := make([]interface{}, 0, len(kind.ListValue.GetValues()))
		for _, item := range kind.ListValue.GetValues() {
			list = append(list, valueToInterface(item))
		}
		return list
	case *pb.Value_StructValue:
		fields := make(map[string]interface{}, len(kind.StructValue.GetFields()))
		for key, item := range kind.StructValue.GetFields() {
			fields[key] = valueToInterface(item)
		}
		return fields
	default:
		return nil
	}
}
