package engine

import (
	"github.com/hupe1980/statvec/model"
)

// resolveBinary returns the kind elements are computed in and the result kind.
func resolveBinary(op Op, ka, kb model.Kind) (compute, result model.Kind, err error) {
	incompatible := &IncompatibleKindError{Op: op, Left: ka, Right: kb}
	switch op.Family() {
	case Arithmetic:
		if !ka.IsArithmetic() || !kb.IsArithmetic() {
			return 0, 0, incompatible
		}
		k, err := model.PromoteForArithmetic(ka, kb)
		if err != nil {
			return 0, 0, incompatible
		}
		switch op {
		case OpDivide, OpPower:
			if k == model.KindInteger {
				k = model.KindDouble
			}
		case OpMod, OpIntDiv:
			if k == model.KindComplex {
				return 0, 0, incompatible
			}
		}
		return k, k, nil
	case Comparison:
		if !orderable(ka) || !orderable(kb) {
			return 0, 0, incompatible
		}
		k, err := model.Promote(ka, kb)
		if err != nil {
			return 0, 0, incompatible
		}
		return k, model.KindLogical, nil
	case Logic:
		if ka == model.KindRaw && kb == model.KindRaw {
			return model.KindRaw, model.KindRaw, nil
		}
		if !ka.IsArithmetic() || !kb.IsArithmetic() {
			return 0, 0, incompatible
		}
		return model.KindLogical, model.KindLogical, nil
	default:
		return 0, 0, incompatible
	}
}

func orderable(k model.Kind) bool {
	switch k {
	case model.KindLogical, model.KindInteger, model.KindDouble, model.KindCharacter:
		return true
	default:
		return false
	}
}

// resolveUnary returns the compute and result kind of a unary operator.
func resolveUnary(op Op, k model.Kind) (compute, result model.Kind, err error) {
	incompatible := &IncompatibleKindError{Op: op, Left: k}
	switch op {
	case OpNot:
		switch k {
		case model.KindRaw:
			return model.KindRaw, model.KindRaw, nil
		case model.KindLogical, model.KindInteger, model.KindDouble:
			return model.KindLogical, model.KindLogical, nil
		default:
			return 0, 0, incompatible
		}
	case OpRound:
		if !k.IsArithmetic() {
			return 0, 0, incompatible
		}
	case OpFloor, OpCeiling, OpTrunc:
		if !k.IsArithmetic() || k == model.KindComplex {
			return 0, 0, incompatible
		}
	default:
		if !k.IsArithmetic() {
			return 0, 0, incompatible
		}
	}
	r, err := model.PromoteForArithmetic(model.KindInteger, k)
	if err != nil {
		return 0, 0, incompatible
	}
	return r, r, nil
}

// nullKind returns the kind of the empty result produced when an operand is NULL.
func nullKind(op Op, other model.Kind) (model.Kind, error) {
	switch op.Family() {
	case Comparison, Logic:
		return model.KindLogical, nil
	}
	switch {
	case other == model.KindComplex:
		return model.KindComplex, nil
	case other == model.KindNull || other.IsArithmetic():
		return model.KindDouble, nil
	default:
		return 0, &IncompatibleKindError{Op: op, Left: model.KindNull, Right: other}
	}
}
